// Package projection derives the query tables (missions, sorties,
// specialists, file_locks, messages, cursors) from the event log. Handlers
// are deterministic and run inside the appending transaction, so a projection
// rejection rolls the append back and the log never disagrees with the
// tables. The whole set of tables can be rebuilt from the log at any time.
package projection

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/archivedevent"
	"github.com/fleettools/fleetd/ent/event"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/pkg/eventstore"
)

// Handler folds one event into the projection tables.
type Handler func(ctx context.Context, tx *ent.Tx, evt *ent.Event) error

// Engine dispatches events to their projection handlers.
type Engine struct {
	client   *ent.Client
	handlers map[string]Handler
}

// NewEngine creates an Engine with every lifecycle handler registered.
func NewEngine(client *ent.Client) *Engine {
	e := &Engine{client: client, handlers: map[string]Handler{}}

	e.register(eventstore.TypeMissionCreated, applyMissionCreated)
	e.register(eventstore.TypeMissionStarted, applyMissionStarted)
	e.register(eventstore.TypeMissionReview, applyMissionReview)
	e.register(eventstore.TypeMissionCompleted, applyMissionCompleted)
	e.register(eventstore.TypeMissionCancelled, applyMissionCancelled)

	e.register(eventstore.TypeSortieCreated, applySortieCreated)
	e.register(eventstore.TypeSortieAssigned, applySortieAssigned)
	e.register(eventstore.TypeSortieStarted, applySortieStarted)
	e.register(eventstore.TypeSortieProgressed, applySortieProgressed)
	e.register(eventstore.TypeSortieBlocked, applySortieBlocked)
	e.register(eventstore.TypeSortieUnblocked, applySortieUnblocked)
	e.register(eventstore.TypeSortieCompleted, applySortieCompleted)
	e.register(eventstore.TypeSortieFailed, applySortieFailed)
	e.register(eventstore.TypeSortieCancelled, applySortieCancelled)
	e.register(eventstore.TypeSortieReviewOpened, applySortieReviewOpened)
	e.register(eventstore.TypeSortieReviewApproved, applySortieReviewApproved)
	e.register(eventstore.TypeSortieReviewRejected, applySortieReviewRejected)
	e.register(eventstore.TypeSortieRestored, applySortieRestored)

	e.register(eventstore.TypeSpecialistSpawned, applySpecialistSpawned)
	e.register(eventstore.TypeSpecialistRegistered, applySpecialistRegistered)
	e.register(eventstore.TypeSpecialistHeartbeat, applySpecialistHeartbeat)
	e.register(eventstore.TypeSpecialistStale, applySpecialistStale)
	e.register(eventstore.TypeSpecialistDeregistered, applySpecialistDeregistered)

	e.register(eventstore.TypeLockReserved, applyLockReserved)
	e.register(eventstore.TypeLockReleased, applyLockReleased)
	e.register(eventstore.TypeLockExpired, applyLockExpired)
	e.register(eventstore.TypeLockExtended, applyLockExtended)
	e.register(eventstore.TypeLockForceReleased, applyLockForceReleased)
	e.register(eventstore.TypeLockReacquired, applyLockReacquired)

	e.register(eventstore.TypeSquawkSent, applySquawkSent)
	e.register(eventstore.TypeSquawkRead, applySquawkRead)
	e.register(eventstore.TypeSquawkAcked, applySquawkAcked)

	e.register(eventstore.TypeCursorAdvanced, applyCursorAdvanced)

	e.register(eventstore.TypeFleetCheckpointed, applyMissionActivity)
	e.register(eventstore.TypeFleetRecovered, applyMissionActivity)
	e.register(eventstore.TypeContextCompacted, applyMissionActivity)

	return e
}

func (e *Engine) register(eventType string, h Handler) {
	e.handlers[eventType] = h
}

// Apply dispatches one event to its handler. Event types with no handler
// (audit-only types and retired historical types) are recorded in the log
// with no projection effect.
func (e *Engine) Apply(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	h, ok := e.handlers[evt.EventType]
	if !ok {
		return nil
	}
	if err := h(ctx, tx, evt); err != nil {
		return fmt.Errorf("projection of %s (%s): %w", evt.EventType, evt.ID, err)
	}
	return nil
}

// Rebuild drops every projection row and replays the full log through the
// handlers in global sequence order, merging the archive and the live table.
// Compaction archives whole streams, so either table can hold the lower
// sequence at any point. Checkpoints, snapshots and the archive are primary
// storage, not projections, and are left untouched.
func (e *Engine) Rebuild(ctx context.Context) error {
	start := time.Now()

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start rebuild transaction: %w", err)
	}
	defer tx.Rollback()

	if err := wipeProjections(ctx, tx); err != nil {
		return err
	}

	archived, err := tx.ArchivedEvent.Query().
		Order(ent.Asc(archivedevent.FieldSequenceNumber)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to read archived events: %w", err)
	}

	replayed := 0
	const batch = 500
	var after int64
	for {
		live, err := tx.Event.Query().
			Where(event.SequenceNumberGT(after)).
			Order(ent.Asc(event.FieldSequenceNumber)).
			Limit(batch).
			All(ctx)
		if err != nil {
			return fmt.Errorf("failed to read events: %w", err)
		}
		if len(live) == 0 {
			break
		}
		for _, evt := range live {
			for len(archived) > 0 && archived[0].SequenceNumber < evt.SequenceNumber {
				if err := e.Apply(ctx, tx, eventstore.FromArchived(archived[0])); err != nil {
					return err
				}
				archived = archived[1:]
				replayed++
			}
			if err := e.Apply(ctx, tx, evt); err != nil {
				return err
			}
			after = evt.SequenceNumber
			replayed++
		}
	}
	for _, ae := range archived {
		if err := e.Apply(ctx, tx, eventstore.FromArchived(ae)); err != nil {
			return err
		}
		replayed++
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rebuild: %w", err)
	}

	slog.Info("Rebuilt projections",
		"events", replayed,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

func wipeProjections(ctx context.Context, tx *ent.Tx) error {
	if _, err := tx.Cursor.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe cursors: %w", err)
	}
	if _, err := tx.Message.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe messages: %w", err)
	}
	if _, err := tx.FileLock.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe file locks: %w", err)
	}
	if _, err := tx.Specialist.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe specialists: %w", err)
	}
	if _, err := tx.Sortie.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe sorties: %w", err)
	}
	if _, err := tx.Mission.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe missions: %w", err)
	}
	return nil
}

// applyMissionActivity bumps the parent mission's last_activity_at for
// fleet-level events that reference a mission.
func applyMissionActivity(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	missionID, _ := evt.Data["mission_id"].(string)
	if missionID == "" {
		return nil
	}
	return touchMission(ctx, tx, missionID, evt.OccurredAt)
}

func touchMission(ctx context.Context, tx *ent.Tx, missionID string, at time.Time) error {
	_, err := tx.Mission.Update().
		Where(mission.ID(missionID)).
		SetLastActivityAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch mission %s: %w", missionID, err)
	}
	return nil
}
