package main

import (
	"fmt"
	"os"

	"github.com/mordilloSan/go-genesis/internal/cli"
)

// Demo of the genesis console renderer.
//
// Usage: ./go-genesis [--level trace] [--mode text] [--config settings.yaml]
func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
