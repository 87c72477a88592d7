package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartref/internal/descriptor"
	"chartref/internal/report"
	"chartref/internal/resolve"
)

func newReportCmd(root *rootOptions) *cobra.Command {
	flags := &resolveFlags{}

	var outputPath string

	cmd := &cobra.Command{
		Use:   "report <chart.yaml> <column>...",
		Short: "Write a resolution report workbook",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := descriptor.Load(args[0])
			if err != nil {
				return err
			}

			rows, diags := report.Resolve(resolve.New(root.logger), b, args[1:], flags.options())

			if err := report.WriteXLSX(rows, diags, outputPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(rows), outputPath)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "chartref-report.xlsx", "Output workbook path")

	return cmd
}
