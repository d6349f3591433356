// Package main is the entry point for bellacasa-datagen.
package main

import (
	"fmt"
	"os"

	"github.com/bellacasa/bellacasa-datagen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
