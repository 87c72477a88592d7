package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartref/internal/descriptor"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <chart.yaml>",
		Short: "Check a chart descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := descriptor.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := descriptor.Validate(f)

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d.String())
			}

			if err := diags.Error(); err != nil {
				return fmt.Errorf("%s is invalid: %d error(s)", args[0], len(diags.Errors))
			}

			fmt.Fprintf(out, "%s is valid\n", args[0])

			return nil
		},
	}
}
