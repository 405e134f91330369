// Package main provides the entry point for the promptify CLI.
package main

import (
	"fmt"
	"os"

	"promptify/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
