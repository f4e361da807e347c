package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleettools/fleetd/pkg/core"
	"github.com/fleettools/fleetd/pkg/models"
)

// statusOverview is the JSON shape of `fleetctl status`.
type statusOverview struct {
	LastSequence int64                  `json:"last_sequence"`
	Missions     []*models.MissionStats `json:"missions"`
	ActiveLocks  int                    `json:"active_locks"`
}

// newStatusCommand creates `fleetctl status`.
func newStatusCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show fleet status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCore(opts, func(ctx context.Context, c *core.Core) error {
				overview := &statusOverview{}

				if seq, err := c.Store.LastSequence(ctx); err == nil {
					overview.LastSequence = seq
				}
				if active, err := c.Locks.ListActive(ctx, ""); err == nil {
					overview.ActiveLocks = len(active)
				}

				missions, err := c.Missions.List(ctx, "", 0)
				if err != nil {
					return err
				}
				for _, m := range missions {
					stats, err := c.Missions.Stats(ctx, m.ID)
					if err != nil {
						return err
					}
					overview.Missions = append(overview.Missions, stats)
				}

				return emit(opts, overview, func() string {
					return formatStatus(overview)
				})
			})
		},
	}
	return cmd
}

func formatStatus(o *statusOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "event log at sequence %d, %d active locks\n", o.LastSequence, o.ActiveLocks)
	if len(o.Missions) == 0 {
		b.WriteString("no missions")
		return b.String()
	}
	for _, m := range o.Missions {
		fmt.Fprintf(&b, "mission %s  %s  %d%%  (%d/%d sorties)",
			m.MissionID, m.Status, m.ProgressPercent, m.CompletedSorties, m.TotalSorties)
		if len(m.ByStatus) > 0 {
			parts := make([]string, 0, len(m.ByStatus))
			for status, n := range m.ByStatus {
				parts = append(parts, fmt.Sprintf("%s=%d", status, n))
			}
			sort.Strings(parts)
			fmt.Fprintf(&b, "  [%s]", strings.Join(parts, " "))
		}
		for _, blocker := range m.Blockers {
			fmt.Fprintf(&b, "\n  blocker: %s", blocker)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
