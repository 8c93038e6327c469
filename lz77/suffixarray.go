package lz77

import "sort"

// SuffixArrayFinder locates matches via a suffix array and its LCP
// (longest common prefix) array, rather than a hash table.
//
// Ported from the reference's ConstructSuffixArray (prefix-doubling,
// O(N log^2 N) via repeated sort) and ConstructLCPArray (Kasai's
// algorithm) in suffix_array.cpp — the module the distilled spec
// describes as "in the source but not wired into the pipeline". It is
// restored here as a real, tested, opt-in MatchFinder rather than
// dead code, but mido.Codec still defaults to HashChain; callers
// select this one explicitly via WithMatchFinder.
type SuffixArrayFinder struct {
	// MaxProbes bounds how many suffix-array neighbors are examined in
	// each direction per position. The reference has no such bound
	// (it wasn't wired into anything that would have needed one); one
	// is added here so a single Search call can't degrade to O(N).
	MaxProbes int

	data []byte
	sa   []int32
	rank []int32
	lcp  []int32
}

func (f *SuffixArrayFinder) Reset() {
	f.data = nil
	f.sa = nil
	f.rank = nil
	f.lcp = nil
}

func (f *SuffixArrayFinder) FindMatches(data []byte) []Match {
	if f.MaxProbes == 0 {
		f.MaxProbes = 64
	}
	f.build(data)

	var p GreedyParser
	return p.Parse(f, data)
}

func (f *SuffixArrayFinder) build(data []byte) {
	f.data = data
	n := len(data)
	f.sa = constructSuffixArray(data)
	f.rank = make([]int32, n)
	for i, s := range f.sa {
		f.rank[s] = int32(i)
	}
	f.lcp = constructLCPArray(data, f.sa, f.rank)
}

// Search scans outward from pos's rank in the suffix array, in both
// directions, maintaining a running minimum of the LCP values crossed
// (the LCP between two suffixes at ranks i < j is the minimum of
// lcp[i+1..j]). It stops a direction once that running minimum can no
// longer beat the best match found so far, or after MaxProbes steps.
func (f *SuffixArrayFinder) Search(dst []AbsoluteMatch, pos, limit int) []AbsoluteMatch {
	n := len(f.data)
	r := int(f.rank[pos])
	bestLen := 0
	var best AbsoluteMatch

	consider := func(cand int, runLen int) {
		if cand >= pos || pos-cand > Window {
			return
		}
		l := runLen
		if pos+l > limit {
			l = limit - pos
		}
		// Forbid self-overlap: the source run can only be reused up to
		// where it runs into pos itself, same as requiring i+len <= pos
		// (length <= distance) in the naive and hash-chain finders.
		if l > pos-cand {
			l = pos - cand
		}
		if l > bestLen {
			bestLen = l
			best = AbsoluteMatch{Start: pos, End: pos + l, Match: cand}
		}
	}

	minLCP := 1 << 30
	for i, steps := r-1, 0; i >= 0 && steps < f.MaxProbes; i, steps = i-1, steps+1 {
		if int(f.lcp[i+1]) < minLCP {
			minLCP = int(f.lcp[i+1])
		}
		if minLCP <= bestLen {
			break
		}
		consider(int(f.sa[i]), minLCP)
	}

	minLCP = 1 << 30
	for i, steps := r+1, 0; i < n && steps < f.MaxProbes; i, steps = i+1, steps+1 {
		if int(f.lcp[i]) < minLCP {
			minLCP = int(f.lcp[i])
		}
		if minLCP <= bestLen {
			break
		}
		consider(int(f.sa[i]), minLCP)
	}

	if bestLen >= MinMatch {
		dst = append(dst, best)
	}
	return dst
}

// constructSuffixArray builds a suffix array by prefix doubling:
// sort suffixes by their first 2^k characters, refine ranks, repeat
// until ranks are unique or k exceeds n.
func constructSuffixArray(data []byte) []int32 {
	n := len(data)
	sa := make([]int32, n)
	rank := make([]int, n)
	for i := range data {
		sa[i] = int32(i)
		rank[i] = int(data[i])
	}

	tmp := make([]int, n)
	less := func(k int) func(i, j int) bool {
		return func(i, j int) bool {
			if rank[i] != rank[j] {
				return rank[i] < rank[j]
			}
			ri, rj := -1, -1
			if i+k < n {
				ri = rank[i+k]
			}
			if j+k < n {
				rj = rank[j+k]
			}
			return ri < rj
		}
	}

	for k := 1; k < n; k <<= 1 {
		cmp := less(k)
		sort.Slice(sa, func(a, b int) bool { return cmp(int(sa[a]), int(sa[b])) })

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if cmp(int(sa[i-1]), int(sa[i])) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)
		if rank[sa[n-1]] == n-1 {
			break
		}
	}
	return sa
}

// constructLCPArray computes the LCP array via Kasai's algorithm:
// lcp[i] is the length of the longest common prefix between the
// suffixes at sa[i-1] and sa[i].
func constructLCPArray(data []byte, sa []int32, rank []int32) []int32 {
	n := len(data)
	lcp := make([]int32, n)
	h := 0
	for i := 0; i < n; i++ {
		if rank[i] > 0 {
			j := int(sa[rank[i]-1])
			for i+h < n && j+h < n && data[i+h] == data[j+h] {
				h++
			}
			lcp[rank[i]] = int32(h)
			if h > 0 {
				h--
			}
		}
	}
	return lcp
}
