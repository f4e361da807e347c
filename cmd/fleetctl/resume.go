package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleettools/fleetd/pkg/checkpoint"
	"github.com/fleettools/fleetd/pkg/core"
	"github.com/fleettools/fleetd/pkg/faults"
)

// newResumeCommand creates `fleetctl resume`.
func newResumeCommand(opts *rootOptions) *cobra.Command {
	var (
		missionID    string
		checkpointID string
		autoResume   bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Recover mission state from a checkpoint",
		Long: `Recover from a checkpoint: restore sortie states, re-acquire live
locks, and re-queue undelivered messages.

With --checkpoint a specific checkpoint is used; with --mission its latest
checkpoint. --auto-resume recovers every mission the startup detection
reports as interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if checkpointID == "" && missionID == "" && !autoResume {
				return faults.New(faults.KindValidation,
					"one of --checkpoint, --mission or --auto-resume is required")
			}
			return withCore(opts, func(ctx context.Context, c *core.Core) error {
				var reports []*checkpoint.RecoveryReport

				recoverOne := func(id string) error {
					report, err := c.Checkpoints.Recover(ctx, id, dryRun)
					if err != nil {
						return err
					}
					reports = append(reports, report)
					return nil
				}

				switch {
				case checkpointID != "":
					if err := recoverOne(checkpointID); err != nil {
						return err
					}
				case missionID != "":
					doc, err := c.Checkpoints.Latest(ctx, missionID)
					if err != nil {
						return err
					}
					if err := recoverOne(doc.CheckpointID); err != nil {
						return err
					}
				default:
					detected := c.DetectInterrupted(ctx)
					if len(detected) == 0 {
						return faults.New(faults.KindPrecondition, "no interrupted missions detected")
					}
					for _, m := range detected {
						if err := recoverOne(m.CheckpointID); err != nil {
							return err
						}
					}
				}

				return emit(opts, reports, func() string {
					lines := make([]string, 0, len(reports))
					for _, r := range reports {
						lines = append(lines, formatReport(r))
					}
					return strings.Join(lines, "\n")
				})
			})
		},
	}

	cmd.Flags().StringVar(&missionID, "mission", "", "mission to resume from its latest checkpoint")
	cmd.Flags().StringVar(&checkpointID, "checkpoint", "", "checkpoint to resume from")
	cmd.Flags().BoolVar(&autoResume, "auto-resume", false, "resume every interrupted mission")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what recovery would do without applying it")
	return cmd
}

func formatReport(r *checkpoint.RecoveryReport) string {
	var b strings.Builder
	verb := "recovered"
	if r.DryRun {
		verb = "would recover"
	}
	fmt.Fprintf(&b, "mission %s %s from %s: %d sorties restored, %d locks re-acquired (%d failed), %d messages re-queued",
		r.MissionID, verb, r.CheckpointID,
		r.SortiesRestored, r.LocksReacquired, r.LocksFailed, r.MessagesRequeued)
	for _, blocker := range r.Blockers {
		fmt.Fprintf(&b, "\n  blocker: %s", blocker)
	}
	if r.RecoveryContext.NextSteps != nil {
		for _, step := range r.RecoveryContext.NextSteps {
			fmt.Fprintf(&b, "\n  next: %s", step)
		}
	}
	return b.String()
}
