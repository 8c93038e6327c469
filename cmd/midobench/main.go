// Command midobench prints a compression ratio comparison table for a
// single input file: mido against a handful of reference codecs. It
// is purely informational and produces no compressed artifact; see
// the midobench package doc comment for why this lives outside mido
// itself.
package main

import (
	"fmt"
	"os"

	"mido/midobench"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_file>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	results := midobench.Run(data)
	fmt.Print(midobench.Format(results))
}
