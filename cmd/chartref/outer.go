package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chartref/internal/chart"
	"chartref/internal/descriptor"
	"chartref/internal/resolve"
)

func newOuterCmd(root *rootOptions) *cobra.Command {
	flags := &resolveFlags{}

	cmd := &cobra.Command{
		Use:   "outer <chart.yaml> <column>",
		Short: "List the dimensions enclosing a column's field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := descriptor.Load(args[0])
			if err != nil {
				return err
			}

			ref, _, ok := resolve.New(root.logger).ResolveColumn(b, args[1], flags.options())
			if !ok {
				return fmt.Errorf("column %q resolves to no field", args[1])
			}

			outer := resolve.OuterReferences(b, ref.Field.FullName(), chart.DesignFields(b))
			for _, name := range chart.Names(outer) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
