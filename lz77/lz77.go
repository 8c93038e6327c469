// Package lz77 parses a byte buffer into a sequence of literal runs
// and back-references, using a pluggable match-finding strategy.
//
// The interface split — a Searcher that proposes candidates at one
// position and a Parser that decides which candidates to keep — is
// carried over from the teacher's press.Searcher/press.Parser split
// (press.go, parser.go) and generalized: the teacher's version serves
// block-oriented streaming compressors with configurable window and
// match-length limits, where this one serves a single one-shot parse
// of the whole buffer against this format's fixed Window/MinMatch/
// MaxMatch.
package lz77

const (
	// Window is the largest distance a match may reference.
	Window = 32768
	// MinMatch is the shortest match worth emitting as a back-reference.
	MinMatch = 3
	// MaxMatch is the longest match a single record can encode.
	MaxMatch = 255
)

// Match is one parsed token: Unmatched literal bytes immediately
// followed by a back-reference of Length bytes found Distance bytes
// back. Length is 0 for a trailing run of literals with no following
// match (mirrors press.Match's use of a zero Length as an end marker).
type Match struct {
	Unmatched int
	Length    int
	Distance  int
}

// AbsoluteMatch is a Match expressed as absolute indexes into the
// buffer being searched: [Start, End) is the matched range, and Match
// is where the identical bytes first occurred.
type AbsoluteMatch struct {
	Start int
	End   int
	Match int
}

func (m AbsoluteMatch) length() int { return m.End - m.Start }

// A Searcher proposes match candidates at a single position. It may
// append zero candidates (nothing found) or more than one; the Parser
// is responsible for choosing among them. limit bounds how far a
// candidate's End may extend (the parser derives it from MaxMatch and
// the end of the buffer).
type Searcher interface {
	Search(dst []AbsoluteMatch, pos, limit int) []AbsoluteMatch
}

// A MatchFinder runs a parse strategy over an entire buffer in one
// call. It is the type mido.Codec depends on.
type MatchFinder interface {
	// FindMatches parses data and returns the chosen token sequence.
	FindMatches(data []byte) []Match

	// Reset clears any internal state left over from a previous call,
	// so the MatchFinder can be reused against unrelated data.
	Reset()
}

// GreedyParser implements the greedy strategy described in the
// format's design: at each position, ask the Searcher for candidates,
// take the longest one (first-found wins on a tie), and skip past it;
// otherwise emit the current byte as a literal and advance by one.
//
// Unlike the teacher's GreedyParser (parser.go), this one never
// extends a chosen match backward into the preceding unmatched run:
// the reference C++ parser this format is grounded on (FindLongestMatch
// in compressor.cpp) doesn't do that either, so neither does this.
type GreedyParser struct {
	cache []AbsoluteMatch
}

// Parse runs the greedy strategy over data using src as the source of
// candidates.
func (g *GreedyParser) Parse(src Searcher, data []byte) []Match {
	n := len(data)
	var out []Match
	nextEmit := 0
	pos := 0

	for pos < n {
		limit := pos + MaxMatch
		if limit > n {
			limit = n
		}

		g.cache = src.Search(g.cache[:0], pos, limit)
		best, ok := longest(g.cache)
		if ok && best.length() >= MinMatch {
			out = append(out, Match{
				Unmatched: best.Start - nextEmit,
				Length:    best.length(),
				Distance:  best.Start - best.Match,
			})
			pos = best.End
			nextEmit = best.End
			continue
		}
		pos++
	}

	if nextEmit < n {
		out = append(out, Match{Unmatched: n - nextEmit})
	}
	return out
}

// longest returns the first candidate with the greatest length,
// matching the format's first-found-wins tie-break.
func longest(candidates []AbsoluteMatch) (AbsoluteMatch, bool) {
	if len(candidates) == 0 {
		return AbsoluteMatch{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.length() > best.length() {
			best = c
		}
	}
	return best, true
}
