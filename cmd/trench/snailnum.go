package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trench/snailnum"
)

func newSnailnumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snailnum [input]",
		Short: "Snailfish homework: sum magnitude and best ordered pair",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			var numbers []*snailnum.Number
			sc := bufio.NewScanner(in)
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				n, err := snailnum.Parse(line)
				if err != nil {
					return fmt.Errorf("line %d: %w", len(numbers)+1, err)
				}
				numbers = append(numbers, n)
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			sum, err := snailnum.Sum(numbers)
			if err != nil {
				return err
			}
			part2, err := snailnum.MaxPairMagnitude(numbers)
			if err != nil {
				return err
			}
			printParts(cmd.OutOrStdout(), sum.Magnitude(), part2)

			return nil
		},
	}
}
