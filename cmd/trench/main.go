// Command trench solves the cavern puzzles: each subcommand reads one
// puzzle input from a file argument or stdin and prints its two
// answers as "part1: <value>" and "part2: <value>".
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
