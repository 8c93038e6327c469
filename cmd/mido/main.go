// Command mido compresses or decompresses a file using the MIDO
// format. Usage, argument handling, and the console banner lines
// mirror the original tool's main() (middle_out.cpp): two
// subcommands, no flags, no CLI framework — nothing in the reference
// corpus this project was built from uses one.
package main

import (
	"fmt"
	"os"

	"mido"
)

func printUsage(prog string) {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> <input_file> <output_file>\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  -c   Compress")
	fmt.Fprintln(os.Stderr, "  -d   Decompress")
}

func main() {
	if len(os.Args) != 4 {
		printUsage(os.Args[0])
		os.Exit(1)
	}

	command, inPath, outPath := os.Args[1], os.Args[2], os.Args[3]

	switch command {
	case "-c":
		fmt.Printf("Compressing %s to %s...\n", inPath, outPath)
		if err := runCompress(inPath, outPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	case "-d":
		fmt.Printf("Decompressing %s to %s...\n", inPath, outPath)
		if err := runDecompress(inPath, outPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		printUsage(os.Args[0])
		os.Exit(1)
	}
}

func runCompress(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %s: %w", inPath, err)
	}

	fmt.Printf("Input size: %d bytes\n", len(data))

	out, err := mido.Compress(data)
	if err != nil {
		return err
	}
	if out == nil {
		// Empty input: the format produces no output at all.
		out = []byte{}
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to open output file: %s: %w", outPath, err)
	}

	fmt.Println("--------------------------------------------------")
	fmt.Println("Middle-Out Compression Results")
	fmt.Println("--------------------------------------------------")
	fmt.Printf("Original Size   : %d bytes\n", len(data))
	fmt.Printf("Compressed Size : %d bytes\n", len(out))
	fmt.Println("--------------------------------------------------")
	return nil
}

func runDecompress(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %s: %w", inPath, err)
	}

	out, err := mido.Decompress(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("failed to open output file: %s: %w", outPath, err)
	}

	fmt.Printf("Decompressed %d bytes.\n", len(out))
	return nil
}
