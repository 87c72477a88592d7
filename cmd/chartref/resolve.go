package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"chartref/internal/descriptor"
	"chartref/internal/report"
	"chartref/internal/resolve"
)

type resolveFlags struct {
	axisOnly      bool
	text          bool
	preferRuntime bool
	series        string
	asJSON        bool
	dump          bool
}

func (f *resolveFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.axisOnly, "axis-only", false, "Only match X and Y fields")
	cmd.Flags().BoolVar(&f.text, "text", false, "Resolve the text aesthetic")
	cmd.Flags().BoolVar(&f.preferRuntime, "prefer-runtime", false, "Answer period parts with their runtime field")
	cmd.Flags().StringVar(&f.series, "series", "", "Series whose per-series aesthetics apply")
}

func (f *resolveFlags) options() resolve.Options {
	return resolve.Options{
		AxisOnly:                    f.axisOnly,
		TextRequested:               f.text,
		PreferRuntimeForPeriodParts: f.preferRuntime,
		Series:                      f.series,
	}
}

func newResolveCmd(root *rootOptions) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "resolve <chart.yaml> <column>...",
		Short: "Resolve rendered columns against a chart descriptor",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := descriptor.Load(args[0])
			if err != nil {
				return err
			}

			if flags.dump {
				fmt.Fprint(cmd.ErrOrStderr(), spew.Sdump(b))
			}

			rows, diags := report.Resolve(resolve.New(root.logger), b, args[1:], flags.options())

			if flags.asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")

				return enc.Encode(struct {
					Rows        []report.Row `json:"rows"`
					Diagnostics any          `json:"diagnostics"`
				}{rows, diags})
			}

			printRows(cmd.OutOrStdout(), rows)

			for _, w := range diags.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w.String())
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.asJSON, "json", false, "Print JSON")
	cmd.Flags().BoolVar(&flags.dump, "dump", false, "Dump the loaded binding to stderr")

	return cmd
}

func printRows(w io.Writer, rows []report.Row) {
	for _, r := range rows {
		if !r.Resolved {
			fmt.Fprintf(w, "%s\t-\n", r.Column)
			continue
		}

		fields := []string{r.Column, r.Field, r.Kind, r.Identity, r.Scope, r.Step.String()}
		if r.Derived != "none" {
			fields = append(fields, r.Derived)
		}

		fmt.Fprintln(w, strings.Join(fields, "\t"))
	}
}
