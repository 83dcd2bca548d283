// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package bytequote escapes the bytes of a JSON string value one at a
// time, without decoding them as Unicode. It is the byte-oriented
// counterpart of jtree's internal/escape package: that package decodes
// runes because its scanner's input is already known-good UTF-8, but an
// emitter writing caller-supplied bytes cannot assume that, and must
// escape strictly by byte value to guarantee 7-bit-clean output.
package bytequote

var hexDigit = [...]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f',
}

// Byte escapes a single byte of JSON string content and calls put for
// each resulting output byte. Bytes below 0x20 or at or above 0x7F are
// written as \uXXXX (lowercase hex, zero-padded to four digits); '"'
// and '\\' are backslash-escaped; every other byte passes through
// unchanged.
func Byte(put func(byte), b byte) {
	if b < 0x20 || b >= 0x7F {
		put('\\')
		put('u')
		put('0')
		put('0')
		put(hexDigit[b>>4])
		put(hexDigit[b&0x0F])
		return
	}
	if b == '"' || b == '\\' {
		put('\\')
	}
	put(b)
}
