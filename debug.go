package mido

import (
	"log"
	"os"
)

// debug gates the package's trace output. It mirrors the teacher's
// zstd subpackage (zstd/zstd.go: debug/println/printf gated on a
// package const), except this flag is also settable at runtime via
// MIDO_DEBUG, since cmd/mido needs to turn tracing on without a
// rebuild. The original C++ tool printed its "LZ77: N matches..."
// progress line unconditionally to stdout; here it's opt-in and goes
// through log, so a library caller embedding mido never gets surprise
// stdout writes. (cmd/mido still prints its own "Input size:" banner
// line to stdout itself.)
var debug = os.Getenv("MIDO_DEBUG") == "1"

func debugf(format string, args ...interface{}) {
	if debug {
		log.Printf("mido: "+format, args...)
	}
}
