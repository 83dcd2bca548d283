package mujson_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	mujson "github.com/rdpoor/mu-json"
)

func BenchmarkParse(b *testing.B) {
	input, err := os.ReadFile("testdata/input.json")
	if err != nil {
		b.Fatalf("Reading test input: %v", err)
	}
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Decoder", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			dec := json.NewDecoder(bytes.NewReader(input))
			for {
				_, err := dec.Token()
				if err == io.EOF {
					break
				} else if err != nil {
					b.Fatalf("Unexpected error: %v", err)
				}
			}
		}
	})

	b.Run("Parse", func(b *testing.B) {
		tokens := make([]mujson.Token, 128)
		for i := 0; i < b.N; i++ {
			if _, err := mujson.Parse(input, tokens); err != nil {
				b.Fatalf("Unexpected error: %v", err)
			}
		}
	})
}
