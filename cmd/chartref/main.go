// Package main provides the CLI entry point for chartref.
//
// chartref resolves rendered chart column identifiers back to the fields of
// the chart binding they came from:
//   - resolve: resolve columns against a chart descriptor
//   - outer: list the dimensions enclosing a field (hyperlink parameters)
//   - report: export a resolution report as xlsx
//   - validate: check a chart descriptor
//   - serve: run the HTTP API
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
	logger  *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "chartref",
		Short: "Resolve rendered chart columns to their bound fields",
		Long: `chartref maps the opaque column identifiers of a rendered chart back to
the dimension or aggregate of the chart binding that produced them.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log resolution steps to stderr")

	rootCmd.AddCommand(
		newResolveCmd(opts),
		newOuterCmd(opts),
		newReportCmd(opts),
		newValidateCmd(),
		newServeCmd(opts),
	)

	return rootCmd
}

// newLogger returns a debug logger when verbose is set, nil otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
