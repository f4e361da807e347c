package projection

import (
	"context"
	"fmt"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
)

func applyMissionCreated(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.MissionCreated
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	builder := tx.Mission.Create().
		SetID(p.MissionID).
		SetTitle(p.Title).
		SetStatus(mission.StatusPending).
		SetCreatedAt(evt.OccurredAt).
		SetLastActivityAt(evt.OccurredAt)
	if p.Description != "" {
		builder.SetDescription(p.Description)
	}
	if p.Priority != "" {
		builder.SetPriority(mission.Priority(p.Priority))
	}
	if p.Strategy != "" {
		builder.SetStrategy(p.Strategy)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return faults.Newf(faults.KindConflict, "mission %s already exists", p.MissionID)
		}
		return fmt.Errorf("failed to create mission row: %w", err)
	}
	return nil
}

func applyMissionStarted(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	return setMissionStatus(ctx, tx, evt, mission.StatusInProgress)
}

func applyMissionReview(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	return setMissionStatus(ctx, tx, evt, mission.StatusReview)
}

func applyMissionCompleted(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	return setMissionStatus(ctx, tx, evt, mission.StatusCompleted)
}

func applyMissionCancelled(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	return setMissionStatus(ctx, tx, evt, mission.StatusCancelled)
}

func setMissionStatus(ctx context.Context, tx *ent.Tx, evt *ent.Event, status mission.Status) error {
	var p eventstore.MissionStatusChanged
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	upd := tx.Mission.UpdateOneID(p.MissionID).
		SetStatus(status).
		SetLastActivityAt(evt.OccurredAt)
	switch status {
	case mission.StatusInProgress:
		upd.SetStartedAt(evt.OccurredAt)
	case mission.StatusCompleted, mission.StatusCancelled:
		upd.SetCompletedAt(evt.OccurredAt)
	}

	if _, err := upd.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return faults.ErrNotFound
		}
		return fmt.Errorf("failed to update mission %s: %w", p.MissionID, err)
	}
	return nil
}

// recalcMissionCounters refreshes the derived total/completed counters after
// a sortie lifecycle event.
func recalcMissionCounters(ctx context.Context, tx *ent.Tx, missionID string, at *ent.Event) error {
	total, err := tx.Sortie.Query().
		Where(sortie.MissionID(missionID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count sorties: %w", err)
	}
	completed, err := tx.Sortie.Query().
		Where(sortie.MissionID(missionID), sortie.StatusEQ(sortie.StatusCompleted)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count completed sorties: %w", err)
	}

	_, err = tx.Mission.UpdateOneID(missionID).
		SetTotalSorties(total).
		SetCompletedSorties(completed).
		SetLastActivityAt(at.OccurredAt).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return faults.ErrNotFound
		}
		return fmt.Errorf("failed to update mission counters: %w", err)
	}
	return nil
}
