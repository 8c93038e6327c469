package mido

import "errors"

// Sentinel errors for the conditions the format's decoder and encoder
// must recognize. Callers compare against these with errors.Is; cmd/mido
// maps them to an stderr message and a nonzero exit code.
var (
	// ErrBadMagic is returned when a compressed buffer's header magic
	// doesn't match the MIDO container signature.
	ErrBadMagic = errors.New("mido: bad magic")

	// ErrTruncated is returned when a compressed buffer is shorter than
	// its own header claims it should be.
	ErrTruncated = errors.New("mido: truncated or corrupt container")

	// ErrMatchUnderflow is returned when the match-record region runs
	// out before the decoder has emitted the declared original size.
	ErrMatchUnderflow = errors.New("mido: match data underflow")

	// ErrInvalidDistance is returned when a match record's distance
	// exceeds the number of bytes emitted so far.
	ErrInvalidDistance = errors.New("mido: invalid match distance")
)
