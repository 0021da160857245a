package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bboissin/thesis-bboissin/parcopy"
)

func newCyclesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cycles <batches.yaml>",
		Short: "List the copy cycles of every batch of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCycles(cmd, args[0])
		},
	}
}

func (a *app) runCycles(cmd *cobra.Command, path string) error {
	// Cycles do not depend on the spare, so any default will do.
	batches, err := readBatches(cmd, path, 0)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, b := range batches {
		cycles := parcopy.Cycles(b.Copies)
		a.log.Debug("cycles", "batch", b.Name, "count", len(cycles))
		if len(cycles) == 0 {
			if _, err := fmt.Fprintf(out, "%s: no cycles\n", b.Name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(out, "%s: %v\n", b.Name, cycles); err != nil {
			return err
		}
	}

	return nil
}
