package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trench/telemetry"
)

func newTelemetryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "telemetry [input]",
		Short: "BITS transmission: version sum and expression value",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			p, err := telemetry.ParseHex(string(raw))
			if err != nil {
				return err
			}
			printParts(cmd.OutOrStdout(), p.VersionSum(), p.Value())

			return nil
		},
	}
}
