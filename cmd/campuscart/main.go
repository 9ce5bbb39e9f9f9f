// This is the main entry point for the campuscart binary.
// Build with: go build -o bin/campuscart ./cmd/campuscart
// Usage: campuscart <command> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
