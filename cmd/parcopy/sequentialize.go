package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bboissin/thesis-bboissin/internal/yamlfile"
	"github.com/bboissin/thesis-bboissin/parcopy"
)

type sequentializeFlags struct {
	format         string
	verify         bool
	workers        int
	dropSelfCopies bool
	spare          int64
}

func newSequentializeCmd(a *app) *cobra.Command {
	f := &sequentializeFlags{}
	cmd := &cobra.Command{
		Use:   "sequentialize <batches.yaml>",
		Short: "Order every batch of a file into sequential copies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSequentialize(cmd, args[0], f)
		},
	}
	cmd.Flags().StringVar(&f.format, "format", outputText, "output format: text or yaml")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "check every result against the parallel semantics")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "batches processed concurrently, 0 for one per CPU (env PARCOPY_WORKERS)")
	cmd.Flags().BoolVar(&f.dropSelfCopies, "drop-self-copies", false, "skip copies whose source is their destination (env PARCOPY_DROP_SELF_COPIES)")
	cmd.Flags().Int64Var(&f.spare, "spare", -1, "spare register for batches that name none")

	return cmd
}

func (a *app) runSequentialize(cmd *cobra.Command, path string, f *sequentializeFlags) error {
	if err := checkFormat(f.format); err != nil {
		return err
	}
	batches, err := readBatches(cmd, path, f.spare)
	if err != nil {
		return err
	}

	workers := a.cfg.Workers
	if cmd.Flags().Changed("workers") {
		workers = f.workers
	}
	drop := a.cfg.DropSelfCopies
	if cmd.Flags().Changed("drop-self-copies") {
		drop = f.dropSelfCopies
	}

	opts := []parcopy.Option{parcopy.WithWorkers(workers)}
	if drop {
		opts = append(opts, parcopy.WithDropSelfCopies())
	}

	a.log.Debug("sequentializing", "file", path, "batches", len(batches), "workers", workers)
	results, err := parcopy.SequentializeAll(cmd.Context(), batches, opts...)
	if err != nil {
		return err
	}

	for i, res := range results {
		a.log.Info("sequentialized", "batch", res.Name, "copies", len(res.Copies), "evictions", res.Evictions)
		if !f.verify {
			continue
		}
		if err := parcopy.Verify(batches[i].Copies, res.Copies, batches[i].Spare); err != nil {
			return fmt.Errorf("batch %q: %w", res.Name, err)
		}
	}

	out := cmd.OutOrStdout()
	if f.format == outputYAML {
		return yamlfile.EncodeResults(out, results)
	}

	return writeResults(out, results)
}

// readBatches decodes the batch file at path. A negative spare means no
// default spare register.
func readBatches(cmd *cobra.Command, path string, spare int64) ([]parcopy.Batch, error) {
	if spare > int64(^uint32(0)) {
		return nil, fmt.Errorf("--spare %d is not a register", spare)
	}
	var def *parcopy.Register
	if spare >= 0 {
		r := parcopy.Register(spare)
		def = &r
	}

	in, err := openInput(cmd, path)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return yamlfile.DecodeBatches(in, def)
}

// writeResults prints one line per batch: its name then its copies.
func writeResults(w io.Writer, results []parcopy.Result) error {
	for _, res := range results {
		moves := make([]string, len(res.Copies))
		for i, c := range res.Copies {
			moves[i] = c.String()
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", res.Name, strings.Join(moves, " ")); err != nil {
			return err
		}
	}

	return nil
}
