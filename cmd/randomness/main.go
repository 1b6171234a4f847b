// Package main provides the randomness CLI.
package main

import (
	"os"

	"github.com/leapstack-labs/randomness/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
