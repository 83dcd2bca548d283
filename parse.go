// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson

import "go4.org/mem"

// Parse scans the JSON value in input and writes its tokens into tokens
// in preorder, allocating no memory beyond what the caller supplied in
// tokens. It returns the number of tokens written, or an error if input
// is not a single well-formed JSON value (RFC 7159 §2: any value, not
// only an object or array, is permitted at the top level).
//
// tokens borrow their spans from input: the returned tokens are valid
// only as long as input is not modified, and [Token.Bytes] must be
// called with the same input slice.
func Parse(input []byte, tokens []Token) (int, error) {
	if len(input) == 0 || len(tokens) == 0 {
		return 0, parseErr(CodeBadArgument, 0)
	}
	p := &parser{buf: input, tokens: tokens}
	p.skipSpace()
	if p.atEOS() {
		return 0, parseErr(CodeNoEntities, p.pos)
	}
	if code := p.parseElement(); code != CodeNone {
		return 0, parseErr(code, p.pos)
	}
	if p.count == 0 {
		return 0, parseErr(CodeNoEntities, p.pos)
	}

	p.skipSpace()
	if !p.atEOS() {
		return 0, parseErr(CodeStrayInput, p.pos)
	}

	// Token traversal requires the last-marker bit to be set.
	last := p.count - 1
	p.tokens[last] = p.tokens[last].withLast(true)
	return p.count, nil
}

// ParseString is Parse for callers that hold their input as a string
// rather than a []byte. It costs one copy (Go strings cannot be indexed
// as mutable byte slices without it); Token.Bytes must then be called
// against that same copy, which ParseString does not return -- callers
// that need Bytes should call Parse([]byte(s), tokens) themselves and
// keep the slice.
func ParseString(input string, tokens []Token) (int, error) {
	return Parse([]byte(input), tokens)
}

// parser holds the mutable state of a single Parse call. It is the Go
// analogue of mu_json.c's parser_t: a position into an input buffer, a
// growing token array, and a current nesting level.
type parser struct {
	buf    []byte
	pos    int
	tokens Tokens
	count  int
	level  int
}

func (p *parser) atEOS() bool { return p.pos >= len(p.buf) }

// peek returns the next input byte without consuming it. The caller
// must have checked atEOS first.
func (p *parser) peek() byte { return p.buf[p.pos] }

// get consumes and returns the next input byte. The caller must have
// checked atEOS first.
func (p *parser) get() byte {
	b := p.buf[p.pos]
	p.pos++
	return b
}

func (p *parser) skipSpace() {
	for !p.atEOS() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

// alloc appends a new token of the given type, starting at the current
// position and at the parser's current level, and returns its index. It
// reports CodeNotEnoughTokens if the token array is full, or
// CodeTooDeep if the level exceeds what the bit-packed Token can record.
func (p *parser) alloc(typ TokenType) (int, Code) {
	if p.level > MaxLevel {
		return -1, CodeTooDeep
	}
	if p.count >= len(p.tokens) {
		return -1, CodeNotEnoughTokens
	}
	idx := p.count
	p.tokens[idx] = newToken(p.pos, 0, typ, p.level)
	p.count++
	return idx, CodeNone
}

// finalize sets the length of the token at idx to span from its start
// to the parser's current position.
func (p *parser) finalize(idx int) {
	t := p.tokens[idx]
	p.tokens[idx] = newToken(t.Start(), p.pos-t.Start(), t.Type(), t.Level()).withLast(t.IsLast())
}

// parseElement consumes one JSON value of any type, dispatching on the
// first non-whitespace byte. On entry the parser may be positioned
// anywhere; on success it is positioned just past the value.
func (p *parser) parseElement() Code {
	p.skipSpace()
	if p.atEOS() {
		return CodeIncomplete
	}

	switch ch := p.peek(); {
	case ch == '"':
		return p.parseString()
	case ch == '-' || isDigit(ch):
		return p.parseNumber()
	case ch == 't':
		return p.parseLiteral(mem.S("true"), True)
	case ch == 'f':
		return p.parseLiteral(mem.S("false"), False)
	case ch == 'n':
		return p.parseLiteral(mem.S("null"), Null)
	case ch == '{':
		return p.parseObject()
	case ch == '[':
		return p.parseArray()
	case ch&0x80 != 0:
		return CodeNoMultibyte
	default:
		return CodeBadFormat
	}
}

func (p *parser) parseString() Code {
	idx, code := p.alloc(String)
	if code != CodeNone {
		return code
	}
	p.get() // consume opening quote

	for {
		if p.atEOS() {
			return CodeIncomplete
		}
		ch := p.get()
		switch {
		case ch == '"':
			p.finalize(idx)
			return CodeNone
		case ch == '\\':
			if p.atEOS() {
				return CodeIncomplete
			}
			esc := p.get()
			switch esc {
			case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
				// valid single-char escape
			case 'u':
				for i := 0; i < 4; i++ {
					if p.atEOS() {
						return CodeIncomplete
					}
					if !isHexDigit(p.get()) {
						return CodeBadFormat
					}
				}
			default:
				return CodeBadFormat
			}
		case ch&0x80 != 0:
			return CodeNoMultibyte
		case ch < 0x20:
			return CodeBadFormat
		}
	}
}

func (p *parser) parseNumber() Code {
	idx, code := p.alloc(Integer)
	if code != CodeNone {
		return code
	}

	if p.peek() == '-' {
		p.get()
		if p.atEOS() {
			return CodeIncomplete
		}
	}

	if !isDigit(p.peek()) {
		return CodeBadFormat
	}
	if p.get() == '0' {
		// A leading zero must be the only digit in the integer part.
		if !p.atEOS() && isDigit(p.peek()) {
			return CodeBadFormat
		}
	} else {
		for !p.atEOS() && isDigit(p.peek()) {
			p.get()
		}
	}

	isFloat := false
	if !p.atEOS() && p.peek() == '.' {
		p.get()
		n := 0
		for !p.atEOS() && isDigit(p.peek()) {
			p.get()
			n++
		}
		if n == 0 {
			return CodeBadFormat
		}
		isFloat = true
	}

	if !p.atEOS() && (p.peek() == 'e' || p.peek() == 'E') {
		p.get()
		if !p.atEOS() && (p.peek() == '+' || p.peek() == '-') {
			p.get()
		}
		n := 0
		for !p.atEOS() && isDigit(p.peek()) {
			p.get()
			n++
		}
		if n == 0 {
			return CodeBadFormat
		}
		isFloat = true
	}

	if isFloat {
		t := p.tokens[idx]
		p.tokens[idx] = newToken(t.Start(), t.Len(), Number, t.Level())
	}
	p.finalize(idx)
	return CodeNone
}

func (p *parser) parseLiteral(want mem.RO, typ TokenType) Code {
	idx, code := p.alloc(typ)
	if code != CodeNone {
		return code
	}
	for i := 0; i < want.Len(); i++ {
		if p.atEOS() {
			return CodeIncomplete
		}
		if p.get() != want.At(i) {
			return CodeBadFormat
		}
	}
	p.finalize(idx)
	return CodeNone
}

func (p *parser) parseObject() Code {
	idx, code := p.alloc(Object)
	if code != CodeNone {
		return code
	}
	p.get() // consume '{'
	p.level++

	first := true
	for {
		p.skipSpace()
		if p.atEOS() {
			p.level--
			return CodeIncomplete
		}
		if p.peek() == '}' {
			break
		}
		if !first {
			if code := p.expect(','); code != CodeNone {
				p.level--
				return code
			}
			p.skipSpace()
		}
		first = false

		if p.atEOS() {
			p.level--
			return CodeIncomplete
		}
		if p.peek() != '"' {
			p.level--
			return CodeBadFormat
		}
		if code := p.parseString(); code != CodeNone {
			p.level--
			return code
		}
		p.skipSpace()
		if code := p.expect(':'); code != CodeNone {
			p.level--
			return code
		}
		if code := p.parseElement(); code != CodeNone {
			p.level--
			return code
		}
	}

	p.get() // consume '}'
	p.level--
	p.finalize(idx)
	return CodeNone
}

func (p *parser) parseArray() Code {
	idx, code := p.alloc(Array)
	if code != CodeNone {
		return code
	}
	p.get() // consume '['
	p.level++

	first := true
	for {
		p.skipSpace()
		if p.atEOS() {
			p.level--
			return CodeIncomplete
		}
		if p.peek() == ']' {
			break
		}
		if !first {
			if code := p.expect(','); code != CodeNone {
				p.level--
				return code
			}
			p.skipSpace()
		}
		first = false

		if code := p.parseElement(); code != CodeNone {
			p.level--
			return code
		}
	}

	p.get() // consume ']'
	p.level--
	p.finalize(idx)
	return CodeNone
}

// expect consumes ch if it is next in the input (skipping no whitespace
// of its own; callers skip around it), reporting CodeBadFormat or
// CodeIncomplete otherwise.
func (p *parser) expect(ch byte) Code {
	if p.atEOS() {
		return CodeIncomplete
	}
	if p.peek() != ch {
		return CodeBadFormat
	}
	p.get()
	return CodeNone
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
