package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// newRootCmd assembles the base command with one subcommand per puzzle.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trench",
		Short: "Cavern puzzle solvers",
		Long: `Trench bundles three puzzle solvers:

  riskgrid   minimum-risk path through a digit grid (plain and ×5 expansion)
  snailnum   snailfish homework: magnitude of the sum, best ordered pair
  telemetry  BITS transmission: version sum and expression value

Each subcommand reads its input from the given file, or stdin when no
file is named, and prints the two answers.`,
		SilenceUsage: true,
	}
	cmd.AddCommand(newRiskgridCmd(), newSnailnumCmd(), newTelemetryCmd())

	return cmd
}

// openInput yields the named file, or stdin when args is empty.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return os.Stdin, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

// printParts writes the two answers in the fixed driver format.
func printParts(w io.Writer, part1, part2 any) {
	fmt.Fprintf(w, "part1: %v\n", part1)
	fmt.Fprintf(w, "part2: %v\n", part2)
}
