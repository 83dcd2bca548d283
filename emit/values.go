// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package emit

import (
	"strconv"

	"github.com/rdpoor/mu-json/emit/internal/bytequote"
)

// String emits s as a quoted, escaped JSON string.
func (e *Emitter) String(s string) *Emitter {
	e.commify()
	e.raw('"')
	for i := 0; i < len(s); i++ {
		bytequote.Byte(e.sink, s[i])
	}
	return e.raw('"')
}

// Bytes emits buf as a quoted, escaped JSON string, exactly as String
// does for a string. NUL bytes in buf are escaped like any other
// control byte.
func (e *Emitter) Bytes(buf []byte) *Emitter {
	e.commify()
	e.raw('"')
	for _, b := range buf {
		bytequote.Byte(e.sink, b)
	}
	return e.raw('"')
}

// Integer emits value as a signed decimal integer.
func (e *Emitter) Integer(value int64) *Emitter {
	e.commify()
	var buf [20]byte // max len of a signed 64-bit decimal
	return e.digits(strconv.AppendInt(buf[:0], value, 10))
}

// Number emits value as a JSON number. If value round-trips exactly
// through a 64-bit integer, it is written as one (matching Integer);
// otherwise it is written as the shortest decimal representation that
// reproduces value exactly, which may use exponent notation.
func (e *Emitter) Number(value float64) *Emitter {
	if i := int64(value); float64(i) == value {
		return e.Integer(i)
	}
	e.commify()
	var buf [32]byte
	return e.digits(strconv.AppendFloat(buf[:0], value, 'g', -1, 64))
}

// digits writes b to the sink verbatim without commify-ing; callers
// must call commify themselves first.
func (e *Emitter) digits(b []byte) *Emitter {
	for _, c := range b {
		e.raw(c)
	}
	return e
}

// Bool emits true or false.
func (e *Emitter) Bool(b bool) *Emitter {
	if b {
		return e.True()
	}
	return e.False()
}

// True emits the literal true.
func (e *Emitter) True() *Emitter { e.commify(); return e.keyword("true") }

// False emits the literal false.
func (e *Emitter) False() *Emitter { e.commify(); return e.keyword("false") }

// Null emits the literal null.
func (e *Emitter) Null() *Emitter { e.commify(); return e.keyword("null") }

func (e *Emitter) keyword(s string) *Emitter {
	for i := 0; i < len(s); i++ {
		e.raw(s[i])
	}
	return e
}

// Literal emits buf verbatim: no quoting, no escaping. It still
// participates in separator sequencing like any other value. The
// caller is responsible for buf being valid JSON; Literal performs no
// validation of its contents.
func (e *Emitter) Literal(buf []byte) *Emitter {
	e.commify()
	for _, b := range buf {
		e.raw(b)
	}
	return e
}
