// Package container reads and writes the MIDO file format: a 24-byte
// header followed by four payload regions (entropy-coded literals,
// flag bits, match records, and the serialized symbol model).
//
// Grounded on the header/body layout written by Compress and read by
// Decompress in compressor.cpp.
package container

import (
	"encoding/binary"
	"errors"
	"fmt"

	"mido/ransmodel"
)

// Magic is the four-byte container signature, 'O','D','I','M' on disk
// (little-endian 0x4D49444F).
const Magic = 0x4D49444F

// HeaderSize is the fixed size of the container header in bytes.
const HeaderSize = 24

// ErrBadMagic is returned by Decode when the header magic doesn't match.
var ErrBadMagic = errors.New("container: bad magic")

// ErrTruncated is returned by Decode when the header's declared region
// sizes don't fit inside the supplied buffer. The original C++ decoder
// trusted the header and read straight off the sizes; a Go slice
// expression with an out-of-range bound panics instead of returning an
// error, so this check is new relative to the reference and exists to
// turn a truncated or hostile file into an error rather than a crash.
var ErrTruncated = errors.New("container: truncated or corrupt header")

// Streams holds the four decoded (or about-to-be-encoded) payload
// regions plus the original size carried in the header.
type Streams struct {
	OrigSize int
	Rans     []byte
	Flags    []byte
	Match    []byte
	Model    []byte
}

// Encode serializes a header and the four regions into one contiguous
// buffer, in the order the format requires: rans, flags, match, model.
func Encode(s Streams) []byte {
	total := HeaderSize + len(s.Rans) + len(s.Flags) + len(s.Match) + len(s.Model)
	out := make([]byte, HeaderSize, total)

	binary.LittleEndian.PutUint32(out[0:4], Magic)
	binary.LittleEndian.PutUint32(out[4:8], uint32(s.OrigSize))
	binary.LittleEndian.PutUint32(out[8:12], uint32(len(s.Rans)))
	binary.LittleEndian.PutUint32(out[12:16], uint32(len(s.Flags)))
	binary.LittleEndian.PutUint32(out[16:20], uint32(len(s.Match)))
	binary.LittleEndian.PutUint32(out[20:24], uint32(len(s.Model)))

	out = append(out, s.Rans...)
	out = append(out, s.Flags...)
	out = append(out, s.Match...)
	out = append(out, s.Model...)
	return out
}

// Decode validates the header and slices data into its four regions,
// in declared order.
func Decode(data []byte) (Streams, error) {
	if len(data) < HeaderSize {
		return Streams{}, fmt.Errorf("container: %w", ErrTruncated)
	}

	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != Magic {
		return Streams{}, fmt.Errorf("container: %w", ErrBadMagic)
	}

	origSize := binary.LittleEndian.Uint32(data[4:8])
	ransSize := binary.LittleEndian.Uint32(data[8:12])
	flagsSize := binary.LittleEndian.Uint32(data[12:16])
	matchSize := binary.LittleEndian.Uint32(data[16:20])
	modelSize := binary.LittleEndian.Uint32(data[20:24])

	body := data[HeaderSize:]
	total := uint64(ransSize) + uint64(flagsSize) + uint64(matchSize) + uint64(modelSize)
	if total > uint64(len(body)) {
		return Streams{}, fmt.Errorf("container: %w", ErrTruncated)
	}

	off := uint32(0)
	rans := body[off : off+ransSize]
	off += ransSize
	flags := body[off : off+flagsSize]
	off += flagsSize
	match := body[off : off+matchSize]
	off += matchSize
	model := body[off : off+modelSize]

	return Streams{
		OrigSize: int(origSize),
		Rans:     rans,
		Flags:    flags,
		Match:    match,
		Model:    model,
	}, nil
}

// ModelSize is the fixed size of the serialized symbol model region,
// exported here so callers can sanity-check a header's model_size
// field without importing ransmodel directly.
const ModelSize = ransmodel.ModelSize
