package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/bboissin/thesis-bboissin/internal/config"
)

// Output formats of the sequentialize and dfs commands.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// app carries the settings shared by all subcommands. It is filled in by
// the root command before any subcommand runs.
type app struct {
	cfg config.Config
	log *slog.Logger

	logLevel  string
	logFormat string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "parcopy",
		Short: "Sequentialize parallel register copies",
		Long: `parcopy turns parallel copy batches into ordered register moves
that need at most one spare register, and numbers control-flow
graphs by depth-first search.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error (env PARCOPY_LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text or json (env PARCOPY_LOG_FORMAT)")

	root.AddCommand(
		newSequentializeCmd(a),
		newCyclesCmd(a),
		newDFSCmd(a),
	)

	return root
}

// setup loads the environment, applies flag overrides and builds the logger
// on the command's error stream.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		if err := c.LogLevel.UnmarshalText([]byte(a.logLevel)); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if a.logFormat != "" {
		c.LogFormat = a.logFormat
	}
	if err := c.Validate(); err != nil {
		return err
	}

	a.cfg = c
	a.log = c.NewLogger(cmd.ErrOrStderr())

	return nil
}

// openInput opens path for reading; "-" is the command's input stream.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	return f, nil
}

func checkFormat(format string) error {
	if format != outputText && format != outputYAML {
		return fmt.Errorf("--format %q: want %q or %q", format, outputText, outputYAML)
	}

	return nil
}
