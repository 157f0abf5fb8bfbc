// Command gocsp solves finite-domain constraint problems from the command
// line: cryptarithmetic puzzles, word squares, and YAML-defined problems.
package main

import (
	"fmt"
	"os"

	"github.com/gitrdm/gocsp/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
