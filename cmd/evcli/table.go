package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTableCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the base risk per floor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			est, err := root.estimator()
			if err != nil {
				return err
			}
			table := est.RiskTable()

			if root.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), table)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %-8s %s\n", "FLOOR", "RISK", "DANGER")
			for _, row := range table.Floors {
				fmt.Fprintf(out, "%-6d %-8s %s\n", row.Floor, fmt.Sprintf("%.0f%%", row.BaseRisk*100), row.Label)
			}
			fmt.Fprintf(out, "\nclamped to %.0f%%-%.0f%%, deeper floors use %.0f%%\n",
				table.MinRisk*100, table.MaxRisk*100, table.DefaultRisk*100)
			return nil
		},
	}
}
