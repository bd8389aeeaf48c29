// This is the main entry point for the keyset CLI.
// Build with: go build -o bin/keyset ./cmd/keyset
// Usage: keyset <command> [options]
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
