package rans

import (
	"math/rand"
	"testing"

	"mido/ransmodel"
)

func TestEncodeDecodeReversal(t *testing.T) {
	// Encoding [s0, s1, ..., sk-1] in order and decoding k symbols must
	// yield [sk-1, ..., s1, s0]: rANS is a stack.
	symbols := []byte("ABRACADABRA")
	stats := ransmodel.Count(symbols)

	enc := NewEncoder(stats)
	for _, s := range symbols {
		enc.PutSymbol(s)
	}
	buf := enc.Flush()

	dec := NewDecoder(buf, stats)
	for i := len(symbols) - 1; i >= 0; i-- {
		got := dec.GetSymbol()
		if got != symbols[i] {
			t.Fatalf("position %d: got %q, want %q", i, got, symbols[i])
		}
	}
}

func TestRoundTripRandomAlphabet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 10; trial++ {
		n := 1 + rng.Intn(4000)
		data := make([]byte, n)
		for i := range data {
			// Skewed alphabet so frequencies aren't uniform.
			data[i] = byte(rng.Intn(1 + rng.Intn(64)))
		}
		stats := ransmodel.Count(data)

		enc := NewEncoder(stats)
		for i := len(data) - 1; i >= 0; i-- {
			enc.PutSymbol(data[i])
		}
		buf := enc.Flush()

		dec := NewDecoder(buf, stats)
		for i := 0; i < n; i++ {
			got := dec.GetSymbol()
			if got != data[i] {
				t.Fatalf("trial %d, position %d: got %d, want %d", trial, i, got, data[i])
			}
		}
	}
}

func TestStateStaysInBounds(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	stats := ransmodel.Count(data)
	enc := NewEncoder(stats)
	for i := len(data) - 1; i >= 0; i-- {
		enc.PutSymbol(data[i])
		if enc.state < L {
			t.Fatalf("state %d dropped below L=%d after encoding", enc.state, L)
		}
	}
}
