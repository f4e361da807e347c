package checkpoint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/checkpoint"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/pkg/eventstore"
)

// Prune enforces checkpoint retention across all missions and returns the
// number of checkpoints deleted:
//   - active missions keep at least MinKeep recent checkpoints; older ones
//     past RetentionDays are deleted
//   - completed missions keep only the final checkpoint, dropped after
//     CompletedRetentionDays
func (s *Service) Prune(ctx context.Context) (int, error) {
	missions, err := s.client.Mission.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list missions: %w", err)
	}

	deleted := 0
	for _, m := range missions {
		n, err := s.pruneMission(ctx, m.ID, m.Status == mission.StatusCompleted, m.CompletedAt)
		if err != nil {
			return deleted, err
		}
		deleted += n
	}
	if deleted > 0 {
		slog.Info("Pruned checkpoints", "count", deleted)
	}
	return deleted, nil
}

func (s *Service) pruneMission(ctx context.Context, missionID string, completed bool, completedAt *time.Time) (int, error) {
	rows, err := s.client.Checkpoint.Query().
		Where(checkpoint.MissionID(missionID)).
		Order(ent.Desc(checkpoint.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}

	deleted := 0
	if completed {
		// Keep only the final checkpoint, for CompletedRetentionDays.
		keepFinal := true
		if completedAt != nil {
			cutoff := completedAt.AddDate(0, 0, s.cfg.Checkpoint.CompletedRetentionDays)
			keepFinal = time.Now().Before(cutoff)
		}
		for i, row := range rows {
			if i == 0 && keepFinal {
				continue
			}
			if err := s.Delete(ctx, row.ID, "retention: mission completed"); err != nil {
				return deleted, err
			}
			deleted++
		}
		return deleted, nil
	}

	cutoff := time.Now().AddDate(0, 0, -s.cfg.Checkpoint.RetentionDays)
	for i, row := range rows {
		if i < s.cfg.Checkpoint.MinKeep {
			continue
		}
		if row.CreatedAt.After(cutoff) {
			continue
		}
		if err := s.Delete(ctx, row.ID, "retention: age"); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

// CompactedMission is an in-progress mission detected as interrupted on
// startup.
type CompactedMission struct {
	MissionID    string
	CheckpointID string
	IdleFor      time.Duration
}

// DetectCompacted finds in-progress missions idle past the activity
// threshold that have a resumable checkpoint, emits context_compacted for
// each, and returns them so the caller can expose a recovery prompt or
// auto-resume.
func (s *Service) DetectCompacted(ctx context.Context) ([]CompactedMission, error) {
	cutoff := time.Now().Add(-s.cfg.Checkpoint.ActivityThreshold)
	stale, err := s.client.Mission.Query().
		Where(
			mission.StatusEQ(mission.StatusInProgress),
			mission.LastActivityAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query idle missions: %w", err)
	}

	var detected []CompactedMission
	for _, m := range stale {
		doc, err := s.Latest(ctx, m.ID)
		if err != nil || doc.ProgressPercent >= 100 {
			continue
		}
		idle := time.Duration(0)
		if m.LastActivityAt != nil {
			idle = time.Since(*m.LastActivityAt)
		}

		_, err = s.store.Append(ctx, eventstore.Envelope{
			EventType:  eventstore.TypeContextCompacted,
			StreamType: eventstore.StreamFleet,
			StreamID:   m.ID,
			Payload: &eventstore.ContextCompacted{
				MissionID:    m.ID,
				CheckpointID: doc.CheckpointID,
				IdleMS:       idle.Milliseconds(),
			},
		})
		if err != nil {
			return detected, err
		}
		detected = append(detected, CompactedMission{
			MissionID:    m.ID,
			CheckpointID: doc.CheckpointID,
			IdleFor:      idle,
		})
		slog.Warn("Mission appears interrupted",
			"mission_id", m.ID,
			"checkpoint_id", doc.CheckpointID,
			"idle", idle)
	}
	return detected, nil
}
