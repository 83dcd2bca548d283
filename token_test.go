// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package mujson_test

import (
	"testing"

	mujson "github.com/rdpoor/mu-json"
)

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		typ  mujson.TokenType
		want string
	}{
		{mujson.Invalid, "invalid"},
		{mujson.Array, "array"},
		{mujson.Object, "object"},
		{mujson.String, "string"},
		{mujson.Number, "number"},
		{mujson.Integer, "integer"},
		{mujson.True, "true"},
		{mujson.False, "false"},
		{mujson.Null, "null"},
		{mujson.TokenType(99), "invalid"},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("%v.String() = %q, want %q", test.typ, got, test.want)
		}
	}
}

func TestTokenFields(t *testing.T) {
	input := []byte(`[10, 20]`)
	tokens := make([]mujson.Token, 4)
	n, err := mujson.Parse(input, tokens)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	tokens = tokens[:n]

	arr := tokens[0]
	if got, want := arr.Bytes(input), input; string(got) != string(want) {
		t.Errorf("array span = %q, want %q", got, want)
	}
	if arr.Level() != 0 {
		t.Errorf("array level = %d, want 0", arr.Level())
	}
	if arr.IsLast() {
		t.Error("array token is marked last, but it is not the final token")
	}

	last := tokens[n-1]
	if !last.IsLast() {
		t.Error("final token is not marked last")
	}
	if last.Level() != 1 {
		t.Errorf("last token level = %d, want 1", last.Level())
	}
}
