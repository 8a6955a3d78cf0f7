// Package main provides the CLI for declcheck.
package main

import (
	"os"

	"github.com/leapstack-labs/declcheck/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
