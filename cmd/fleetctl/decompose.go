package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleettools/fleetd/pkg/core"
	"github.com/fleettools/fleetd/pkg/models"
	"github.com/fleettools/fleetd/pkg/planner"
)

// newDecomposeCommand creates `fleetctl decompose`.
func newDecomposeCommand(opts *rootOptions) *cobra.Command {
	var (
		strategy string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "decompose \"<task>\"",
		Short: "Split a task into a sortie DAG",
		Long: `Plan a task as a mission with a DAG of sorties. With --dry-run the
plan is printed without creating anything.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(opts, func(ctx context.Context, c *core.Core) error {
				result, err := c.Planner.Decompose(ctx, models.DecomposeRequest{
					Task:     args[0],
					Strategy: strategy,
					DryRun:   dryRun,
				})
				if err != nil {
					return err
				}
				return emit(opts, result, func() string {
					return formatPlan(result)
				})
			})
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", planner.StrategyFeature,
		"decomposition strategy (file|feature|risk)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the plan without creating sorties")
	return cmd
}

func formatPlan(result *planner.Result) string {
	var b strings.Builder
	if result.Mission != nil {
		fmt.Fprintf(&b, "mission %s: %s\n", result.Mission.ID, result.Mission.Title)
	} else {
		fmt.Fprintf(&b, "plan (%s, dry run)\n", result.Plan.Strategy)
	}
	for i, ps := range result.Plan.Sorties {
		fmt.Fprintf(&b, "  %s: %s", ps.Key, ps.Title)
		if len(ps.DependsOn) > 0 {
			fmt.Fprintf(&b, "  (after %s)", strings.Join(ps.DependsOn, ", "))
		}
		if len(ps.Files) > 0 {
			fmt.Fprintf(&b, "  [%s]", strings.Join(ps.Files, ", "))
		}
		if i < len(result.Plan.Sorties)-1 || len(result.Sorties) > 0 {
			b.WriteString("\n")
		}
	}
	for i, st := range result.Sorties {
		fmt.Fprintf(&b, "  created sortie %s", st.ID)
		if i < len(result.Sorties)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
