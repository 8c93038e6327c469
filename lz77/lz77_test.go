package lz77

import (
	"bytes"
	"math/rand"
	"testing"
)

// reconstruct replays a token stream against data the way mido.Codec's
// decode loop does, as a way to check a MatchFinder's output is
// actually a valid parse of the input it was given.
func reconstruct(data []byte, tokens []Match) []byte {
	var out []byte
	pos := 0
	for _, m := range tokens {
		out = append(out, data[pos:pos+m.Unmatched]...)
		pos += m.Unmatched
		if m.Length > 0 {
			start := len(out) - m.Distance
			for i := 0; i < m.Length; i++ {
				out = append(out, out[start+i])
			}
			pos += m.Length
		}
	}
	return out
}

func checkBounds(t *testing.T, tokens []Match) {
	t.Helper()
	for i, m := range tokens {
		if m.Length == 0 {
			continue
		}
		if m.Length < MinMatch || m.Length > MaxMatch {
			t.Fatalf("token %d: length %d out of range [%d,%d]", i, m.Length, MinMatch, MaxMatch)
		}
		if m.Distance < 1 || m.Distance > Window {
			t.Fatalf("token %d: distance %d out of range [1,%d]", i, m.Distance, Window)
		}
	}
}

func testFinder(t *testing.T, newFinder func() MatchFinder) {
	t.Helper()
	cases := [][]byte{
		[]byte("A"),
		[]byte("ABC"),
		[]byte("ABCABC"),
		bytes.Repeat([]byte{'X'}, 64),
		[]byte("abracadabra abracadabra abracadabra"),
		[]byte(""),
	}

	for _, data := range cases {
		f := newFinder()
		tokens := f.FindMatches(data)
		checkBounds(t, tokens)
		got := reconstruct(data, tokens)
		if !bytes.Equal(got, data) {
			t.Fatalf("%q: reconstruct = %q, want %q", data, got, data)
		}
	}

	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 10; trial++ {
		n := rng.Intn(3000)
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(rng.Intn(6))
		}
		f := newFinder()
		tokens := f.FindMatches(data)
		checkBounds(t, tokens)
		got := reconstruct(data, tokens)
		if !bytes.Equal(got, data) {
			t.Fatalf("trial %d (n=%d): reconstruct mismatch", trial, n)
		}
	}
}

func TestNaiveFinder(t *testing.T) {
	testFinder(t, func() MatchFinder { return &NaiveFinder{} })
}

func TestHashChain(t *testing.T) {
	testFinder(t, func() MatchFinder { return &HashChain{} })
}

func TestSuffixArrayFinder(t *testing.T) {
	testFinder(t, func() MatchFinder { return &SuffixArrayFinder{} })
}

func TestExactSmallRepeatParse(t *testing.T) {
	data := []byte("ABCABC")
	f := &NaiveFinder{}
	tokens := f.FindMatches(data)

	if len(tokens) != 1 {
		t.Fatalf("got %d tokens, want 1: %+v", len(tokens), tokens)
	}
	m := tokens[0]
	if m.Unmatched != 3 || m.Length != 3 || m.Distance != 3 {
		t.Fatalf("got %+v, want Unmatched=3 Length=3 Distance=3", m)
	}
}

func TestReset(t *testing.T) {
	f := &HashChain{}
	a := f.FindMatches([]byte("hello hello hello"))
	f.Reset()
	b := f.FindMatches([]byte("hello hello hello"))
	if len(a) != len(b) {
		t.Fatalf("finder not independent across Reset: %d vs %d tokens", len(a), len(b))
	}
}
