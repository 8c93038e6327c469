package lz77

import "encoding/binary"

// HashChain is mido.Codec's default MatchFinder: a 4-byte rolling hash
// with chained candidates, adapted from the teacher's HashChain
// (chain.go). The teacher's version maintains a growing history buffer
// across repeated calls for a streaming, block-oriented compressor;
// this one rebuilds its table from scratch on each FindMatches call,
// since the format has no streaming mode — the whole buffer is always
// available up front.
type HashChain struct {
	// SearchLen bounds how many candidates are examined on the hash
	// chain per position. The default is 32.
	SearchLen int

	table [hashTableSize]int32
	chain []int32
	data  []byte
}

const (
	hashBits      = 15
	hashTableSize = 1 << hashBits
	hashShift     = 32 - hashBits
	hashMul       = 0x1e35a7bd
)

func hash4(u uint32) uint32 {
	return (u * hashMul) >> hashShift
}

func (h *HashChain) Reset() {
	h.table = [hashTableSize]int32{}
	h.chain = h.chain[:0]
	h.data = nil
}

func (h *HashChain) FindMatches(data []byte) []Match {
	if h.SearchLen == 0 {
		h.SearchLen = 32
	}
	h.build(data)

	var p GreedyParser
	return p.Parse(h, data)
}

func (h *HashChain) build(data []byte) {
	h.data = data
	for i := range h.table {
		h.table[i] = -1
	}
	if cap(h.chain) < len(data) {
		h.chain = make([]int32, len(data))
	} else {
		h.chain = h.chain[:len(data)]
	}

	for i := 0; i+4 <= len(data); i++ {
		hv := hash4(binary.LittleEndian.Uint32(data[i:])) & (hashTableSize - 1)
		h.chain[i] = h.table[hv]
		h.table[hv] = int32(i)
	}
}

// Search walks the hash chain at pos, nearest candidate first,
// stopping after SearchLen probes or once a candidate falls outside
// Window. It returns at most one candidate: the longest one seen.
func (h *HashChain) Search(dst []AbsoluteMatch, pos, limit int) []AbsoluteMatch {
	data := h.data
	if pos+4 > len(data) {
		return dst
	}

	needle := binary.LittleEndian.Uint32(data[pos:])
	hv := hash4(needle) & (hashTableSize - 1)
	candidate := h.table[hv]

	bestLen := 0
	var best AbsoluteMatch
	for tries := h.SearchLen; candidate >= 0 && tries > 0; tries-- {
		c := int(candidate)
		if pos-c > Window {
			break
		}
		if binary.LittleEndian.Uint32(data[c:]) == needle {
			end := extendMatch(data, c, pos, limit)
			if end-pos > bestLen {
				bestLen = end - pos
				best = AbsoluteMatch{Start: pos, End: end, Match: c}
			}
		}
		candidate = h.chain[c]
	}

	if bestLen >= MinMatch {
		dst = append(dst, best)
	}
	return dst
}

// extendMatch returns the largest j' >= j such that j' <= limit and
// data[i:i+j'-j] equals data[j:j']. It assumes i < j.
//
// The i < destStart guard keeps the source strictly before the
// destination's starting position, forbidding self-overlap: without
// it, a run like "XXXXXXXX" would let the source pointer chase the
// destination pointer and report one giant match with length greater
// than distance, which this format's decoder (a plain forward byte
// copy from already-emitted output) cannot reproduce.
func extendMatch(data []byte, i, j, limit int) int {
	destStart := j
	for j < limit && i < destStart && data[i] == data[j] {
		i++
		j++
	}
	return j
}
