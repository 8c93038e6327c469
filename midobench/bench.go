// Package midobench compares the mido codec's output size against a
// handful of established reference codecs, for informational purposes
// only. It is deliberately outside the mido package: the format's
// design explicitly excludes "performance metrics (e.g., time/ratio
// reporting)" from the core, and MIDO's container is never compatible
// with any of these reference formats (no backward-compatibility is a
// stated non-goal). This package exists purely to give the project's
// inherited third-party compression dependencies — carried over from
// the teacher's go.mod — a concern they can actually exercise.
package midobench

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"mido"
)

// Result is one codec's outcome against a single input.
type Result struct {
	Name       string
	InputSize  int
	OutputSize int
}

// Ratio returns InputSize/OutputSize, or 0 if OutputSize is 0 (empty
// input).
func (r Result) Ratio() float64 {
	if r.OutputSize == 0 {
		return 0
	}
	return float64(r.InputSize) / float64(r.OutputSize)
}

// Codec is one entry in the comparison table.
type Codec struct {
	Name     string
	Compress func([]byte) ([]byte, error)
}

// Codecs is the default comparison set: mido itself, plus flate, gzip,
// snappy, zstd and lz4 by way of the reference implementations the
// teacher repo's go.mod already depended on.
var Codecs = []Codec{
	{Name: "mido", Compress: mido.Compress},
	{Name: "flate", Compress: compressFlate},
	{Name: "gzip", Compress: compressGzip},
	{Name: "snappy", Compress: compressSnappy},
	{Name: "zstd", Compress: compressZstd},
	{Name: "lz4", Compress: compressLZ4},
}

// Run compresses data with every codec in Codecs and returns one
// Result per codec, in order. A codec that errors is skipped silently
// rather than aborting the whole comparison: this tool only reports,
// it never fails the caller's build.
func Run(data []byte) []Result {
	results := make([]Result, 0, len(Codecs))
	for _, c := range Codecs {
		out, err := c.Compress(data)
		if err != nil {
			continue
		}
		results = append(results, Result{
			Name:       c.Name,
			InputSize:  len(data),
			OutputSize: len(out),
		})
	}
	return results
}

// Format renders results as a simple aligned table.
func Format(results []Result) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%-8s %10s %10s %8s\n", "codec", "input", "output", "ratio")
	for _, r := range results {
		fmt.Fprintf(&buf, "%-8s %10d %10d %8.2f\n", r.Name, r.InputSize, r.OutputSize, r.Ratio())
	}
	return buf.String()
}

func compressFlate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compressGzip(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func compressSnappy(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func compressZstd(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, err
	}
	return enc.EncodeAll(data, nil), nil
}

func compressLZ4(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
