package container

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := Streams{
		OrigSize: 123,
		Rans:     []byte{1, 2, 3, 4},
		Flags:    []byte{0xFF},
		Match:    []byte{5, 6, 7},
		Model:    bytes.Repeat([]byte{0}, ModelSize),
	}
	blob := Encode(s)

	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.OrigSize != s.OrigSize {
		t.Fatalf("OrigSize = %d, want %d", got.OrigSize, s.OrigSize)
	}
	if !bytes.Equal(got.Rans, s.Rans) || !bytes.Equal(got.Flags, s.Flags) ||
		!bytes.Equal(got.Match, s.Match) || !bytes.Equal(got.Model, s.Model) {
		t.Fatalf("region mismatch: got %+v", got)
	}
}

func TestHeaderConsistency(t *testing.T) {
	s := Streams{
		OrigSize: 10,
		Rans:     []byte{1, 2},
		Flags:    []byte{3},
		Match:    []byte{4, 5, 6},
		Model:    bytes.Repeat([]byte{9}, ModelSize),
	}
	blob := Encode(s)

	if len(blob) != HeaderSize+len(s.Rans)+len(s.Flags)+len(s.Match)+len(s.Model) {
		t.Fatalf("total length %d doesn't match header+regions", len(blob))
	}
	magic := uint32(blob[0]) | uint32(blob[1])<<8 | uint32(blob[2])<<16 | uint32(blob[3])<<24
	if magic != Magic {
		t.Fatalf("magic = %#x, want %#x", magic, Magic)
	}
	modelSize := uint32(blob[20]) | uint32(blob[21])<<8 | uint32(blob[22])<<16 | uint32(blob[23])<<24
	if modelSize != ModelSize {
		t.Fatalf("model_size field = %d, want %d", modelSize, ModelSize)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	blob := make([]byte, HeaderSize)
	_, err := Decode(blob)
	if err == nil {
		t.Fatal("expected error for zeroed header")
	}
}

func TestDecodeTruncated(t *testing.T) {
	_, err := Decode([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error for too-short buffer")
	}

	s := Streams{OrigSize: 1, Rans: []byte{1, 2, 3, 4, 5, 6, 7, 8}}
	blob := Encode(s)
	_, err = Decode(blob[:len(blob)-4])
	if err == nil {
		t.Fatal("expected error when declared region overruns buffer")
	}
}
