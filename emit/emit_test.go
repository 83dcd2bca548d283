// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package emit_test

import (
	"testing"

	"github.com/rdpoor/mu-json/emit"
)

func sinkTo(buf *[]byte) emit.Sink {
	return func(ch byte) { *buf = append(*buf, ch) }
}

func TestEmitterRoundTrip(t *testing.T) {
	// Scenario D.
	var out []byte
	e := emit.New(sinkTo(&out), make([]emit.Level, 8))

	e.ObjectOpen()
	e.KeyInteger("a", 111)
	e.KeyArrayOpen("b")
	e.Number(22.2)
	e.Integer(0)
	e.Number(3.0)
	e.ArrayClose()
	e.KeyObjectOpen("c")
	e.ObjectClose()
	e.ObjectClose()

	want := `{"a":111,"b":[22.2,0,3],"c":{}}`
	if got := string(out); got != want {
		t.Errorf("Emitter output = %q, want %q", got, want)
	}
}

func TestEmitterEscaping(t *testing.T) {
	// Scenario E.
	tests := []struct {
		input string
		want  string
	}{
		{"a\"b", "\"a\\\"b\""},
		{"\x01", "\"\\u0001\""},
		{"\x7f", "\"\\u007f\""},
		{"\xff", "\"\\u00ff\""},
		{"a\\b", "\"a\\\\b\""},
	}
	for _, test := range tests {
		var out []byte
		e := emit.New(sinkTo(&out), make([]emit.Level, 4))
		e.String(test.input)
		if got := string(out); got != test.want {
			t.Errorf("String(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestEmitterLevelOverflow(t *testing.T) {
	var out []byte
	e := emit.New(sinkTo(&out), make([]emit.Level, 2))

	e.ArrayOpen() // level 1
	e.ArrayOpen() // capacity is exhausted: bracket still written, level does not advance
	e.Integer(1)
	e.ArrayClose()
	e.ArrayClose()

	// The second ArrayOpen could not push a new level (cap 2 only allows
	// one nested level), so Integer(1) is treated as a second item of
	// the level the inner ArrayOpen was itself emitted into.
	want := `[[,1]]`
	if got := string(out); got != want {
		t.Errorf("Emitter output = %q, want %q", got, want)
	}
	if got := e.CurrLevel(); got != 0 {
		t.Errorf("CurrLevel() after closes = %d, want 0", got)
	}
}

func TestEmitterLiteralCounts(t *testing.T) {
	var out []byte
	e := emit.New(sinkTo(&out), make([]emit.Level, 4))

	e.ArrayOpen()
	e.Literal([]byte("1"))
	e.Literal([]byte("2"))
	e.ArrayClose()

	want := `[1,2]`
	if got := string(out); got != want {
		t.Errorf("Emitter output = %q, want %q", got, want)
	}
}

func TestEmitterReset(t *testing.T) {
	var out []byte
	e := emit.New(sinkTo(&out), make([]emit.Level, 4))
	e.ObjectOpen()
	e.KeyInteger("a", 1)
	e.Reset()
	if got := e.CurrLevel(); got != 0 {
		t.Errorf("CurrLevel() after Reset = %d, want 0", got)
	}
	if got := e.ItemCount(); got != 0 {
		t.Errorf("ItemCount() after Reset = %d, want 0", got)
	}
}
