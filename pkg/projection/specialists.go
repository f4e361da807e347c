package projection

import (
	"context"
	"fmt"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/specialist"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
)

func applySpecialistSpawned(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SpecialistSpawned
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	builder := tx.Specialist.Create().
		SetID(p.SpecialistID).
		SetStatus(specialist.StatusSpawned).
		SetCurrentSortie(p.SortieID).
		SetLastSeen(evt.OccurredAt).
		SetCreatedAt(evt.OccurredAt)
	if p.MissionID != "" {
		builder.SetMissionID(p.MissionID)
	}
	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return faults.Newf(faults.KindConflict, "specialist %s already exists", p.SpecialistID)
		}
		return fmt.Errorf("failed to create specialist row: %w", err)
	}
	return nil
}

// Registration is the worker's half of the handshake. A worker may register
// without a prior spawn event (manually attached specialists), so this is an
// upsert.
func applySpecialistRegistered(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SpecialistRegistered
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	existing, err := tx.Specialist.Get(ctx, p.SpecialistID)
	if ent.IsNotFound(err) {
		builder := tx.Specialist.Create().
			SetID(p.SpecialistID).
			SetStatus(specialist.StatusRegistered).
			SetLastSeen(evt.OccurredAt).
			SetCreatedAt(evt.OccurredAt)
		if p.Name != "" {
			builder.SetName(p.Name)
		}
		if len(p.Capabilities) > 0 {
			builder.SetCapabilities(p.Capabilities)
		}
		if p.SortieID != "" {
			builder.SetCurrentSortie(p.SortieID)
		}
		if p.MissionID != "" {
			builder.SetMissionID(p.MissionID)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to create specialist row: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load specialist %s: %w", p.SpecialistID, err)
	}

	upd := existing.Update().
		SetStatus(specialist.StatusRegistered).
		SetLastSeen(evt.OccurredAt)
	if p.Name != "" {
		upd.SetName(p.Name)
	}
	if len(p.Capabilities) > 0 {
		upd.SetCapabilities(p.Capabilities)
	}
	if p.SortieID != "" {
		upd.SetCurrentSortie(p.SortieID)
	}
	if p.MissionID != "" {
		upd.SetMissionID(p.MissionID)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to update specialist %s: %w", p.SpecialistID, err)
	}
	return nil
}

func applySpecialistHeartbeat(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SpecialistHeartbeat
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	upd := tx.Specialist.UpdateOneID(p.SpecialistID).
		SetLastSeen(evt.OccurredAt)
	if p.Status != "" {
		upd.SetStatus(specialist.Status(p.Status))
	}
	_, err := upd.Save(ctx)
	return specialistUpdateErr(p.SpecialistID, err)
}

func applySpecialistStale(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SpecialistStale
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.Specialist.UpdateOneID(p.SpecialistID).
		SetStatus(specialist.StatusStale).
		Save(ctx)
	return specialistUpdateErr(p.SpecialistID, err)
}

func applySpecialistDeregistered(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SpecialistDeregistered
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.Specialist.UpdateOneID(p.SpecialistID).
		SetStatus(specialist.StatusCompleted).
		ClearCurrentSortie().
		SetLastSeen(evt.OccurredAt).
		Save(ctx)
	return specialistUpdateErr(p.SpecialistID, err)
}

func specialistUpdateErr(specialistID string, err error) error {
	if err == nil {
		return nil
	}
	if ent.IsNotFound(err) {
		return faults.ErrNotFound
	}
	return fmt.Errorf("failed to update specialist %s: %w", specialistID, err)
}
