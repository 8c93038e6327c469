// Package mido implements a lossless byte-oriented compression codec:
// an LZ77 sliding-window parser feeding a static-model rANS entropy
// coder, multiplexed into a self-contained container.
//
// Grounded on compressor.cpp's Compress/Decompress, with the
// process-wide mutable encoder/decoder state it used replaced by
// independent Codec values (see the design notes for the full
// rationale).
package mido

import (
	"errors"
	"fmt"

	"mido/bitio"
	"mido/container"
	"mido/lz77"
	"mido/rans"
	"mido/ransmodel"
)

// Codec drives end-to-end compression and decompression. The zero
// value is ready to use: it defaults to a *lz77.HashChain match finder.
// A Codec owns no state that outlives a single Compress or Decompress
// call other than its configured MatchFinder, which is Reset at the
// start of each Compress call, so two Codecs (or the same Codec called from two
// goroutines one after another) never interfere with each other's
// buffers.
type Codec struct {
	matchFinder lz77.MatchFinder
}

// Option configures a Codec constructed with New.
type Option func(*Codec)

// WithMatchFinder overrides the default match finder. The suffix-array
// finder (lz77.SuffixArrayFinder) and the brute-force conformance
// oracle (lz77.NaiveFinder) are both selectable this way; neither is
// the default.
func WithMatchFinder(mf lz77.MatchFinder) Option {
	return func(c *Codec) { c.matchFinder = mf }
}

// New returns a configured Codec.
func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	if c.matchFinder == nil {
		c.matchFinder = &lz77.HashChain{}
	}
	return c
}

// Compress encodes data into a self-contained MIDO container. An empty
// input produces a nil buffer and a nil error: per the format's
// design, zero-byte input yields no output at all.
func (c *Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if c.matchFinder == nil {
		c.matchFinder = &lz77.HashChain{}
	}

	// Step 1: modeling. The static model is built from the whole input
	// before any byte is encoded, so the decoder can rebuild the same
	// table from the serialized frequencies alone.
	stats := ransmodel.Count(data)

	// Step 2: parsing. The same input bytes are independently walked by
	// the LZ77 matcher to produce the token stream.
	c.matchFinder.Reset()
	tokens := c.matchFinder.FindMatches(data)

	flagsOut := bitio.NewWriter()
	matchOut := make([]byte, 0, len(tokens)*3)
	var literals []byte

	pos := 0
	nMatches := 0
	for _, m := range tokens {
		if m.Unmatched > 0 {
			literals = append(literals, data[pos:pos+m.Unmatched]...)
			for i := 0; i < m.Unmatched; i++ {
				flagsOut.WriteBit(false)
			}
			pos += m.Unmatched
		}
		if m.Length > 0 {
			matchOut = append(matchOut,
				byte(m.Distance),
				byte(m.Distance>>8),
				byte(m.Length),
			)
			flagsOut.WriteBit(true)
			pos += m.Length
			nMatches++
		}
	}
	flagsOut.Flush()

	debugf("LZ77: %d matches, %d literals", nMatches, len(literals))

	// Step 3: entropy-code the literals. rANS is LIFO, so they're fed
	// to the encoder in reverse order to come back out in forward order
	// (see the rans package doc comment).
	enc := rans.NewEncoder(stats)
	for i := len(literals) - 1; i >= 0; i-- {
		enc.PutSymbol(literals[i])
	}
	ransOut := enc.Flush()

	streams := container.Streams{
		OrigSize: len(data),
		Rans:     ransOut,
		Flags:    flagsOut.Bytes(),
		Match:    matchOut,
		Model:    stats.Serialize(),
	}
	out := container.Encode(streams)
	debugf("compressed %d bytes to %d", len(data), len(out))
	return out, nil
}

// Decompress reconstructs the original bytes from a MIDO container
// produced by Compress.
func (c *Codec) Decompress(data []byte) ([]byte, error) {
	streams, err := container.Decode(data)
	if err != nil {
		return nil, translateContainerErr(err)
	}

	stats, err := ransmodel.LoadModel(streams.Model)
	if err != nil {
		return nil, fmt.Errorf("mido: %w", err)
	}

	dec := rans.NewDecoder(streams.Rans, stats)
	flags := bitio.NewReader(streams.Flags)

	out := make([]byte, 0, streams.OrigSize)
	matchPtr := 0
	for len(out) < streams.OrigSize {
		if !flags.ReadBit() {
			out = append(out, dec.GetSymbol())
			continue
		}

		if matchPtr+3 > len(streams.Match) {
			return nil, ErrMatchUnderflow
		}
		dist := int(streams.Match[matchPtr]) | int(streams.Match[matchPtr+1])<<8
		length := int(streams.Match[matchPtr+2])
		matchPtr += 3

		if dist > len(out) {
			return nil, ErrInvalidDistance
		}

		// Forward byte-by-byte copy: correct even if a future finder
		// ever produced an overlapping match (length > dist), since
		// each byte written becomes visible to the next read.
		start := len(out) - dist
		for i := 0; i < length; i++ {
			out = append(out, out[start+i])
		}
	}

	debugf("decompressed %d bytes", len(out))
	return out, nil
}

func translateContainerErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, container.ErrBadMagic):
		return fmt.Errorf("%w", ErrBadMagic)
	case errors.Is(err, container.ErrTruncated):
		return fmt.Errorf("%w", ErrTruncated)
	default:
		return err
	}
}

// Compress is a convenience wrapper around New().Compress.
func Compress(data []byte) ([]byte, error) {
	return New().Compress(data)
}

// Decompress is a convenience wrapper around New().Decompress.
func Decompress(data []byte) ([]byte, error) {
	return New().Decompress(data)
}
