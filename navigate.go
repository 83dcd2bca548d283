// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

import (
	"fmt"

	"go4.org/mem"
)

// None is the navigator's "no such token" result, used in place of the
// NULL pointer the C original returns from every find_* function.
const None = -1

// Prev returns the index of the token physically preceding i, or None
// if i is the first token.
func (ts Tokens) Prev(i int) int {
	if i <= 0 || i >= len(ts) {
		return None
	}
	return i - 1
}

// Next returns the index of the token physically following i, or None
// if i is the last token.
func (ts Tokens) Next(i int) int {
	if i < 0 || i >= len(ts) || ts[i].IsLast() {
		return None
	}
	return i + 1
}

// Root returns the index of the root token (always 0) reached by
// scanning backward from i, or None if i is out of range.
func (ts Tokens) Root(i int) int {
	if i < 0 || i >= len(ts) {
		return None
	}
	for !ts.IsFirst(i) {
		i = ts.Prev(i)
	}
	return i
}

// Parent returns the index of the token that directly contains i: the
// nearest preceding token at level-1. It returns None if i is the root
// or out of range. Parent pointers are not stored (doing so would
// double the size of a Token), so this scans backward through i's
// physical predecessors -- O(subtree size) in the worst case.
func (ts Tokens) Parent(i int) int {
	if i < 0 || i >= len(ts) || ts.IsFirst(i) {
		return None
	}
	target := ts[i].Level() - 1
	for cur := ts.Prev(i); cur != None; cur = ts.Prev(cur) {
		if ts[cur].Level() == target {
			return cur
		}
	}
	return None
}

// Child returns the index of i's first child, or None if i has no
// children (including if i is a primitive value, which never has one).
func (ts Tokens) Child(i int) int {
	next := ts.Next(i)
	if next == None || ts[next].Level() <= ts[i].Level() {
		return None
	}
	return next
}

// SiblingNext returns the index of the next token at the same level as
// i, or None if i has no following sibling.
func (ts Tokens) SiblingNext(i int) int { return ts.sibling(i, ts.Next) }

// SiblingPrev returns the index of the previous token at the same level
// as i, or None if i has no preceding sibling.
func (ts Tokens) SiblingPrev(i int) int { return ts.sibling(i, ts.Prev) }

func (ts Tokens) sibling(i int, move func(int) int) int {
	if i < 0 || i >= len(ts) || ts.IsFirst(i) {
		return None
	}
	target := ts[i].Level()
	for cur := move(i); cur != None; cur = move(cur) {
		switch {
		case ts[cur].Level() == target:
			return cur
		case ts[cur].Level() < target:
			return None
		}
	}
	return None
}

// Find walks a sequential path into the structure of the tree rooted at
// origin, where each path element is either a string (an object
// member's key) or an int (a 0-based index among an object's or array's
// direct children; negative indices count from the end, as in Python
// slicing). src must be the same buffer passed to the [Parse] call that
// produced tokens; it is needed to compare object keys. Find returns the
// index of the token reached, or an error if the path cannot be
// resolved.
//
// Unlike a path walker over a separately-owned AST, Find never
// allocates a tree: each step is resolved with Child and SiblingNext
// directly against the token array Parse produced.
func Find(tokens Tokens, src []byte, origin int, path ...any) (int, error) {
	cur := origin
	for _, step := range path {
		switch key := step.(type) {
		case string:
			next, err := findKey(tokens, src, cur, key)
			if err != nil {
				return None, err
			}
			cur = next
		case int:
			next, err := findIndex(tokens, cur, key)
			if err != nil {
				return None, err
			}
			cur = next
		default:
			return None, fmt.Errorf("mujson: invalid path element %T", step)
		}
	}
	return cur, nil
}

// findKey resolves an object member named key among obj's direct
// children, returning the index of the member's value.
func findKey(tokens Tokens, src []byte, obj int, key string) (int, error) {
	if obj < 0 || obj >= len(tokens) || tokens[obj].Type() != Object {
		return None, fmt.Errorf("mujson: cannot look up key %q in %v", key, tokens.typeAt(obj))
	}
	want := mem.S(key)
	for k := tokens.Child(obj); k != None; {
		v := tokens.SiblingNext(k)
		if v == None {
			break // malformed tree: unmatched key
		}
		if mem.B(unquote(tokens[k].Bytes(src))).Equal(want) {
			return v, nil
		}
		k = tokens.SiblingNext(v) // advance past the value to the next key
	}
	return None, fmt.Errorf("mujson: key %q not found", key)
}

// unquote strips the surrounding quotation marks a STRING token's Bytes
// always carries. It does not decode escapes (that is explicitly out of
// scope for this package); callers comparing against an escaped key
// will not match, the same limitation Parse itself has.
func unquote(b []byte) []byte {
	if len(b) >= 2 {
		return b[1 : len(b)-1]
	}
	return b
}

// findIndex resolves the i'th direct child of an array or object,
// where a negative i counts backward from the last child.
func findIndex(tokens Tokens, container int, i int) (int, error) {
	if container < 0 || container >= len(tokens) {
		return None, fmt.Errorf("mujson: index %d out of range", i)
	}
	switch tokens[container].Type() {
	case Array, Object:
	default:
		return None, fmt.Errorf("mujson: cannot index into %v", tokens[container].Type())
	}

	children := make([]int, 0, 8)
	for c := tokens.Child(container); c != None; c = tokens.SiblingNext(c) {
		children = append(children, c)
	}
	n := len(children)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return None, fmt.Errorf("mujson: index %d out of bounds (n=%d)", i, n)
	}
	return children[i], nil
}

func (ts Tokens) typeAt(i int) TokenType {
	if i < 0 || i >= len(ts) {
		return Invalid
	}
	return ts[i].Type()
}
