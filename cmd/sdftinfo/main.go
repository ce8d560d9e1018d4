// Command sdftinfo exercises the block and sliding transforms on synthetic
// signals and prints their spectra.
//
// Usage:
//
//	sdftinfo [command] [flags]
//
// Examples:
//
//	sdftinfo fft --size 64 --freq 5 --amplitude 0.5 --phase 30
//	sdftinfo slide --bins 16 --freq 3 --strategy compact
//	sdftinfo check --size 4096 -o json
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
