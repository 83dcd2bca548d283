// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package emit implements a streaming, allocation-free JSON writer.
//
// An Emitter pushes bytes to a caller-supplied [Sink] one character at a
// time and tracks nesting depth on a caller-supplied fixed-size stack
// of [Level] records. It has no notion of the input that produced the
// values it writes, and no relationship to the mujson tokenizer: the
// two packages share a philosophy (caller owns all memory, nothing is
// buffered beyond the current character) but no runtime state.
//
//	levels := make([]emit.Level, 8)
//	e := emit.New(func(ch byte) { os.Stdout.Write([]byte{ch}) }, levels)
//	e.ObjectOpen()
//	e.KeyInteger("a", 111)
//	e.KeyArrayOpen("b")
//	e.Number(22.2)
//	e.ArrayClose()
//	e.ObjectClose()
//	// wrote: {"a":111,"b":[22.2]}
//
// No terminal call is required; the output is valid JSON iff every
// opened container has been closed. Exceeding the level stack's
// capacity does not corrupt memory or abort: the bracket is still
// written, but the level is not pushed, trading bracket-balance
// correctness for continued execution, per the embedded-target policy
// this package was ported from.
package emit
