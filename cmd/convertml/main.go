// SPDX-FileCopyrightText: 2026 convertml
// SPDX-License-Identifier: FSL-1.1-MIT

// Package main is the entry point for the convertml CLI.
package main

import (
	"fmt"
	"os"

	"github.com/convertml/convertml/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Errors are reported on stdout, like the result.
		fmt.Fprintf(os.Stdout, "Error: %v\n", err)
		os.Exit(1)
	}
}
