// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package mujson implements an allocation-free JSON tokenizer and a set
// of pure navigation functions over its output, suited to constrained
// environments that cannot afford a heap-allocated parse tree.
//
// # Parsing
//
// Parse scans a single JSON value out of a caller-supplied byte slice
// and writes its structure, in preorder, into a caller-supplied array
// of [Token] values. It performs no I/O and allocates nothing beyond
// what the caller provides:
//
//	tokens := make([]mujson.Token, 32)
//	n, err := mujson.Parse(input, tokens)
//	if err != nil {
//	    var pe *mujson.ParseError
//	    if errors.As(err, &pe) {
//	        log.Fatalf("parse failed: %s at offset %d", pe.Code, pe.Offset)
//	    }
//	}
//	tokens = tokens[:n]
//
// A [Token] records only its byte span, syntactic type, and nesting
// level; it holds no reference to the input. Call [Token.Bytes] with
// the same buffer passed to Parse to recover a token's text.
//
// # Navigating
//
// The [Tokens] methods (Prev, Next, Root, Parent, Child, SiblingNext,
// SiblingPrev) walk the array Parse produced using only physical
// adjacency and the level/is-last bits recorded in each Token -- there
// are no parent pointers, so Parent and Root scan backward through a
// token's ancestors rather than following a stored link. [Find] builds
// on these to resolve a path of keys and indices without ever
// constructing a tree:
//
//	i, err := mujson.Find(tokens, input, 0, "users", 0, "name")
//
// # Emitting
//
// The companion package [github.com/rdpoor/mu-json/emit] provides a
// streaming writer for producing JSON output with the same
// allocation-free discipline, independent of this package's tokenizer.
package mujson
