package lz77

// NaiveFinder is a direct, unindexed port of the reference parser's
// FindLongestMatch (compressor.cpp): for every position it scans the
// entire window from its oldest byte forward, keeping the first-found
// (earliest) longest match. It is O(N*Window) and exists as a conformance oracle
// for tests, not as mido.Codec's default finder.
type NaiveFinder struct {
	parser GreedyParser
}

func (f *NaiveFinder) Reset() { f.parser = GreedyParser{} }

func (f *NaiveFinder) FindMatches(data []byte) []Match {
	return f.parser.Parse(naiveSearcher{data: data}, data)
}

type naiveSearcher struct {
	data []byte
}

func (s naiveSearcher) Search(dst []AbsoluteMatch, pos, limit int) []AbsoluteMatch {
	data := s.data
	w := pos - Window
	if w < 0 {
		w = 0
	}

	bestLen := 0
	var best AbsoluteMatch
	for i := w; i < pos; i++ {
		l := 0
		for pos+l < limit && i+l < pos && data[i+l] == data[pos+l] {
			l++
		}
		if l > bestLen {
			bestLen = l
			best = AbsoluteMatch{Start: pos, End: pos + l, Match: i}
		}
	}
	if bestLen >= MinMatch {
		dst = append(dst, best)
	}
	return dst
}
