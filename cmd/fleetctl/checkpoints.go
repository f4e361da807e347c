package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleettools/fleetd/pkg/core"
)

// newCheckpointsCommand creates `fleetctl checkpoints` with its list, show
// and prune subcommands.
func newCheckpointsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkpoints",
		Short: "Inspect and prune stored checkpoints",
	}
	cmd.AddCommand(newCheckpointsListCommand(opts))
	cmd.AddCommand(newCheckpointsShowCommand(opts))
	cmd.AddCommand(newCheckpointsPruneCommand(opts))
	return cmd
}

func newCheckpointsListCommand(opts *rootOptions) *cobra.Command {
	var missionID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checkpoints, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(opts, func(ctx context.Context, c *core.Core) error {
				rows, err := c.Checkpoints.List(ctx, missionID)
				if err != nil {
					return err
				}
				return emit(opts, rows, func() string {
					if len(rows) == 0 {
						return "no checkpoints"
					}
					lines := make([]string, 0, len(rows))
					for _, row := range rows {
						marker := " "
						if row.Latest {
							marker = "*"
						}
						lines = append(lines, fmt.Sprintf("%s %s  mission=%s  trigger=%s  progress=%d%%  %s",
							marker, row.ID, row.MissionID, row.Trigger, row.ProgressPercent,
							row.CreatedAt.Format("2006-01-02 15:04:05")))
					}
					return strings.Join(lines, "\n")
				})
			})
		},
	}

	cmd.Flags().StringVar(&missionID, "mission", "", "filter by mission")
	return cmd
}

func newCheckpointsShowCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <checkpoint-id>",
		Short: "Show one checkpoint document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(opts, func(ctx context.Context, c *core.Core) error {
				doc, err := c.Checkpoints.Get(ctx, args[0])
				if err != nil {
					return err
				}
				return emit(opts, doc, func() string {
					var b strings.Builder
					fmt.Fprintf(&b, "checkpoint %s\n", doc.CheckpointID)
					fmt.Fprintf(&b, "  mission:   %s\n", doc.MissionID)
					fmt.Fprintf(&b, "  created:   %s by %s (trigger=%s)\n",
						doc.CreatedAt.Format("2006-01-02 15:04:05"), doc.CreatedBy, doc.Trigger)
					fmt.Fprintf(&b, "  progress:  %d%%\n", doc.ProgressPercent)
					fmt.Fprintf(&b, "  sorties:   %d snapshotted\n", len(doc.Sorties))
					fmt.Fprintf(&b, "  locks:     %d active\n", len(doc.ActiveLocks))
					fmt.Fprintf(&b, "  messages:  %d pending\n", len(doc.PendingMessages))
					fmt.Fprintf(&b, "  last seq:  %d\n", doc.LastEventSequence)
					if doc.RecoveryContext.LastAction != "" {
						fmt.Fprintf(&b, "  last act:  %s\n", doc.RecoveryContext.LastAction)
					}
					for _, step := range doc.RecoveryContext.NextSteps {
						fmt.Fprintf(&b, "  next:      %s\n", step)
					}
					for _, blocker := range doc.RecoveryContext.Blockers {
						fmt.Fprintf(&b, "  blocker:   %s\n", blocker)
					}
					return strings.TrimRight(b.String(), "\n")
				})
			})
		},
	}
	return cmd
}

func newCheckpointsPruneCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Apply the retention policy to stored checkpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(opts, func(ctx context.Context, c *core.Core) error {
				deleted, err := c.Checkpoints.Prune(ctx)
				if err != nil {
					return err
				}
				return emit(opts, map[string]int{"deleted": deleted}, func() string {
					return fmt.Sprintf("%d checkpoints pruned", deleted)
				})
			})
		},
	}
	return cmd
}
