package projection

import (
	"context"
	"fmt"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
)

func applySortieCreated(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieCreated
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	builder := tx.Sortie.Create().
		SetID(p.SortieID).
		SetTitle(p.Title).
		SetStatus(sortie.StatusPending).
		SetCreatedAt(evt.OccurredAt)
	if p.MissionID != "" {
		builder.SetMissionID(p.MissionID)
	}
	if p.Description != "" {
		builder.SetDescription(p.Description)
	}
	if p.Priority != "" {
		builder.SetPriority(sortie.Priority(p.Priority))
	}
	if len(p.Files) > 0 {
		builder.SetFiles(p.Files)
	}
	if len(p.Dependencies) > 0 {
		builder.SetDependencies(p.Dependencies)
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return faults.Newf(faults.KindConflict, "sortie %s already exists", p.SortieID)
		}
		return fmt.Errorf("failed to create sortie row: %w", err)
	}

	if p.MissionID != "" {
		return recalcMissionCounters(ctx, tx, p.MissionID, evt)
	}
	return nil
}

func applySortieAssigned(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieAssigned
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	// Reassignment after a blocker also lands here; clear any blocker state.
	_, err := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.StatusAssigned).
		SetAssignedTo(p.SpecialistID).
		SetAssignedAt(evt.OccurredAt).
		ClearBlockedBy().
		ClearBlockedReason().
		ClearBlockedCategory().
		ClearBlockedAt().
		Save(ctx)
	return sortieUpdateErr(p.SortieID, err)
}

func applySortieStarted(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieStarted
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.StatusInProgress).
		SetStartedAt(evt.OccurredAt).
		Save(ctx)
	if err != nil {
		return sortieUpdateErr(p.SortieID, err)
	}
	return touchSortieMission(ctx, tx, p.SortieID, evt)
}

func applySortieProgressed(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieProgressed
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.Sortie.UpdateOneID(p.SortieID).
		SetProgress(p.Progress).
		Save(ctx)
	if err != nil {
		return sortieUpdateErr(p.SortieID, err)
	}
	return touchSortieMission(ctx, tx, p.SortieID, evt)
}

func applySortieBlocked(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieBlocked
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	upd := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.StatusBlocked).
		SetBlockedReason(p.Reason).
		SetBlockedCategory(sortie.BlockedCategory(p.Category)).
		SetBlockedAt(evt.OccurredAt)
	if p.BlockedBy != "" {
		upd.SetBlockedBy(p.BlockedBy)
	}
	_, err := upd.Save(ctx)
	return sortieUpdateErr(p.SortieID, err)
}

func applySortieUnblocked(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieUnblocked
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.StatusInProgress).
		ClearBlockedBy().
		ClearBlockedReason().
		ClearBlockedCategory().
		ClearBlockedAt().
		Save(ctx)
	return sortieUpdateErr(p.SortieID, err)
}

func applySortieCompleted(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieCompleted
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	result := map[string]any{
		"summary":      p.Summary,
		"tests_passed": p.TestsPassed,
	}
	if len(p.Files) > 0 {
		result["files"] = p.Files
	}
	_, err := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.StatusCompleted).
		SetProgress(100).
		SetResult(result).
		SetCompletedAt(evt.OccurredAt).
		Save(ctx)
	if err != nil {
		return sortieUpdateErr(p.SortieID, err)
	}
	return recalcSortieMission(ctx, tx, p.SortieID, evt)
}

func applySortieFailed(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	return terminateSortie(ctx, tx, evt, sortie.StatusFailed)
}

func applySortieCancelled(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	return terminateSortie(ctx, tx, evt, sortie.StatusCancelled)
}

func terminateSortie(ctx context.Context, tx *ent.Tx, evt *ent.Event, status sortie.Status) error {
	var p eventstore.SortieTerminated
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	upd := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(status).
		SetCompletedAt(evt.OccurredAt)
	if p.Reason != "" {
		upd.SetResult(map[string]any{"reason": p.Reason})
	}
	if _, err := upd.Save(ctx); err != nil {
		return sortieUpdateErr(p.SortieID, err)
	}
	return recalcSortieMission(ctx, tx, p.SortieID, evt)
}

func applySortieReviewOpened(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieReview
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.StatusReview).
		Save(ctx)
	if err != nil {
		return sortieUpdateErr(p.SortieID, err)
	}
	return recalcSortieMission(ctx, tx, p.SortieID, evt)
}

func applySortieReviewApproved(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieReview
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	upd := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.StatusCompleted).
		SetCompletedAt(evt.OccurredAt)
	if p.Feedback != "" {
		upd.SetReviewFeedback(p.Feedback)
	}
	if _, err := upd.Save(ctx); err != nil {
		return sortieUpdateErr(p.SortieID, err)
	}
	return recalcSortieMission(ctx, tx, p.SortieID, evt)
}

// Rejection re-opens the sortie: back to in_progress with feedback attached
// and progress reset by the review event itself.
func applySortieReviewRejected(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieReview
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.StatusInProgress).
		SetProgress(0).
		SetReviewFeedback(p.Feedback).
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		return sortieUpdateErr(p.SortieID, err)
	}
	return recalcSortieMission(ctx, tx, p.SortieID, evt)
}

// Recovery resets the row to the checkpoint snapshot, clearing any
// post-checkpoint blocker state.
func applySortieRestored(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.SortieRestored
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	upd := tx.Sortie.UpdateOneID(p.SortieID).
		SetStatus(sortie.Status(p.Status)).
		SetProgress(p.Progress).
		ClearBlockedBy().
		ClearBlockedReason().
		ClearBlockedCategory().
		ClearBlockedAt()
	if p.AssignedTo != "" {
		upd.SetAssignedTo(p.AssignedTo)
	} else {
		upd.ClearAssignedTo()
	}
	if len(p.Files) > 0 {
		upd.SetFiles(p.Files)
	}
	if _, err := upd.Save(ctx); err != nil {
		return sortieUpdateErr(p.SortieID, err)
	}
	return recalcSortieMission(ctx, tx, p.SortieID, evt)
}

func sortieUpdateErr(sortieID string, err error) error {
	if err == nil {
		return nil
	}
	if ent.IsNotFound(err) {
		return faults.ErrNotFound
	}
	return fmt.Errorf("failed to update sortie %s: %w", sortieID, err)
}

// touchSortieMission bumps the parent mission's activity timestamp.
func touchSortieMission(ctx context.Context, tx *ent.Tx, sortieID string, evt *ent.Event) error {
	s, err := tx.Sortie.Get(ctx, sortieID)
	if err != nil {
		return sortieUpdateErr(sortieID, err)
	}
	if s.MissionID == nil || *s.MissionID == "" {
		return nil
	}
	return touchMission(ctx, tx, *s.MissionID, evt.OccurredAt)
}

// recalcSortieMission refreshes the parent mission's derived counters.
func recalcSortieMission(ctx context.Context, tx *ent.Tx, sortieID string, evt *ent.Event) error {
	s, err := tx.Sortie.Get(ctx, sortieID)
	if err != nil {
		return sortieUpdateErr(sortieID, err)
	}
	if s.MissionID == nil || *s.MissionID == "" {
		return nil
	}
	return recalcMissionCounters(ctx, tx, *s.MissionID, evt)
}
