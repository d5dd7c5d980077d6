// Package main is the entry point for the taxcurve CLI.
package main

import (
	"os"

	"taxcurve/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
