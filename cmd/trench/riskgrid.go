package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trench/riskgrid"
)

// fullCavernScale is the part-2 expansion factor.
const fullCavernScale = 5

func newRiskgridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "riskgrid [input]",
		Short: "Minimum-risk path through a digit grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			g, err := riskgrid.Parse(in)
			if err != nil {
				return err
			}

			part1, err := riskgrid.MinRisk(g)
			if err != nil {
				return err
			}
			part2, err := riskgrid.MinRisk(g, riskgrid.WithScale(fullCavernScale))
			if err != nil {
				return err
			}
			printParts(cmd.OutOrStdout(), part1, part2)

			return nil
		},
	}
}
