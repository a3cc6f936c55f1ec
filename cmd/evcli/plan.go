package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/roadmap"
)

func newPlanCmd(root *rootOptions) *cobra.Command {
	var style string
	var squad bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print a ten-run roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := roadmap.ParseRunStyle(style)
			if err != nil {
				return err
			}

			plan := roadmap.GenerateRunPlan(parsed, squad)
			if root.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), plan)
			}

			out := cmd.OutOrStdout()
			for _, run := range plan {
				fmt.Fprintf(out, "Run %2d  floor %d  %s\n", run.RunIndex, run.TargetFloor, run.Focus)
				fmt.Fprintf(out, "        - %s\n", strings.Join(run.Tips, "\n        - "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&style, "style", string(domain.RunStyleBalanced), "safe, balanced or greedy")
	cmd.Flags().BoolVar(&squad, "squad", false, "playing with a squad")
	return cmd
}
