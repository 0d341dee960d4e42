// Package main provides the minigram binary: parse sentences, generate and
// check recursion patterns, validate mission logs and serve the engine
// over HTTP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
