package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/pkg/core"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
)

// newCheckpointCommand creates `fleetctl checkpoint`.
func newCheckpointCommand(opts *rootOptions) *cobra.Command {
	var (
		missionID string
		note      string
	)

	cmd := &cobra.Command{
		Use:   "checkpoint",
		Short: "Take a manual checkpoint",
		Long: `Take a manual checkpoint of one mission, or of every in-progress
mission when --mission is omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(opts, func(ctx context.Context, c *core.Core) error {
				targets, err := checkpointTargets(ctx, c, missionID)
				if err != nil {
					return err
				}

				var rows []*ent.Checkpoint
				for _, id := range targets {
					row, err := c.Checkpoints.Create(ctx, id,
						eventstore.TriggerManual, note, "fleetctl")
					if err != nil {
						return err
					}
					rows = append(rows, row)
				}
				return emit(opts, rows, func() string {
					lines := make([]string, 0, len(rows))
					for _, row := range rows {
						lines = append(lines, fmt.Sprintf("checkpoint %s created for mission %s (%d%%)",
							row.ID, row.MissionID, row.ProgressPercent))
					}
					return strings.Join(lines, "\n")
				})
			})
		},
	}

	cmd.Flags().StringVar(&missionID, "mission", "", "mission to checkpoint (default: all in-progress)")
	cmd.Flags().StringVar(&note, "note", "", "operator note stored in the recovery context")
	return cmd
}

func checkpointTargets(ctx context.Context, c *core.Core, missionID string) ([]string, error) {
	if missionID != "" {
		return []string{missionID}, nil
	}
	missions, err := c.Missions.List(ctx, "in_progress", 0)
	if err != nil {
		return nil, err
	}
	if len(missions) == 0 {
		return nil, faults.New(faults.KindPrecondition, "no in-progress missions to checkpoint")
	}
	ids := make([]string, 0, len(missions))
	for _, m := range missions {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
