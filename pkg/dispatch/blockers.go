package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/ids"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/mailbox"
)

// DispatchMailbox receives blocker escalations addressed to the coordinator.
const DispatchMailbox = "dispatch"

// waitlist tracks sorties blocked on a dependency, keyed by the dependency's
// sortie id. It is an in-process acceleration structure; the authoritative
// blocked state lives in the projection and survives restarts.
type waitlist struct {
	mu      sync.Mutex
	waiting map[string][]string
}

func (w *waitlist) add(depID, sortieID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.waiting == nil {
		w.waiting = map[string][]string{}
	}
	w.waiting[depID] = append(w.waiting[depID], sortieID)
}

func (w *waitlist) take(depID string) []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	waiters := w.waiting[depID]
	delete(w.waiting, depID)
	return waiters
}

// HandleBlocked routes a fresh blocker by category.
func (d *Scheduler) HandleBlocked(ctx context.Context, sortieID string) error {
	st, err := d.sorties.Get(ctx, sortieID)
	if err != nil {
		return err
	}
	if st.Status != sortie.StatusBlocked || st.BlockedCategory == nil {
		return nil
	}

	switch *st.BlockedCategory {
	case sortie.BlockedCategoryDependency:
		return d.handleDependencyBlock(ctx, st)
	case sortie.BlockedCategoryFileConflict:
		return d.handleFileConflictBlock(ctx, st)
	case sortie.BlockedCategoryError:
		return d.escalateToDispatch(ctx, st, "error blocker needs review")
	case sortie.BlockedCategoryClarification:
		return d.askForClarification(ctx, st)
	}
	return nil
}

// handleDependencyBlock clears the block when the dependency already
// completed, otherwise parks the sortie on the wait list.
func (d *Scheduler) handleDependencyBlock(ctx context.Context, st *ent.Sortie) error {
	depID := ""
	if st.BlockedBy != nil {
		depID = *st.BlockedBy
	}
	if depID == "" {
		return nil
	}

	dep, err := d.sorties.Get(ctx, depID)
	if err != nil {
		return err
	}
	if dep.Status == sortie.StatusCompleted {
		if err := d.notifyAssignee(ctx, st, "dependency_resolved", map[string]any{
			"sortie_id":  st.ID,
			"dependency": depID,
		}); err != nil {
			return err
		}
		_, err := d.sorties.Unblock(ctx, st.ID,
			fmt.Sprintf("dependency %s completed", depID))
		return err
	}

	d.waiters.add(depID, st.ID)
	return nil
}

// handleFileConflictBlock consults the lock manager: an expired or inactive
// conflicting lock means the specialist can simply retry.
func (d *Scheduler) handleFileConflictBlock(ctx context.Context, st *ent.Sortie) error {
	lockID := ""
	if st.BlockedBy != nil {
		lockID = *st.BlockedBy
	}
	if lockID == "" {
		return d.escalateToDispatch(ctx, st, "file conflict without a lock reference")
	}

	lock, err := d.locks.Get(ctx, lockID)
	if err != nil {
		return err
	}
	if lock.Status != filelock.StatusActive || !lock.ExpiresAt.After(time.Now()) {
		if err := d.notifyAssignee(ctx, st, "lock_retry", map[string]any{
			"sortie_id": st.ID,
			"lock_id":   lockID,
			"file":      lock.File,
		}); err != nil {
			return err
		}
		_, err := d.sorties.Unblock(ctx, st.ID, "conflicting lock no longer active")
		return err
	}

	// Holder is live; escalation (force release or reassignment of the
	// disputed files) is a dispatch decision.
	return d.escalateToDispatch(ctx, st,
		fmt.Sprintf("file %s is held by %s until %s",
			lock.File, lock.ReservedBy, lock.ExpiresAt.UTC().Format(time.RFC3339)))
}

func (d *Scheduler) askForClarification(ctx context.Context, st *ent.Sortie) error {
	reason := ""
	if st.BlockedReason != nil {
		reason = *st.BlockedReason
	}
	return d.notifyAssignee(ctx, st, "clarification_request", map[string]any{
		"sortie_id": st.ID,
		"question":  reason,
	})
}

func (d *Scheduler) escalateToDispatch(ctx context.Context, st *ent.Sortie, note string) error {
	reason := ""
	if st.BlockedReason != nil {
		reason = *st.BlockedReason
	}
	_, err := d.mail.Append(ctx, DispatchMailbox, []mailbox.Outgoing{{
		SenderID: reviewerID,
		Type:     "blocker_escalation",
		Content: map[string]any{
			"sortie_id": st.ID,
			"reason":    reason,
			"note":      note,
		},
		Priority: "high",
	}})
	return err
}

// notifyAssignee posts to the blocked specialist's mailbox (mailbox id =
// specialist id).
func (d *Scheduler) notifyAssignee(ctx context.Context, st *ent.Sortie, msgType string, content map[string]any) error {
	if st.AssignedTo == nil || *st.AssignedTo == "" {
		return nil
	}
	_, err := d.mail.Append(ctx, *st.AssignedTo, []mailbox.Outgoing{{
		SenderID: reviewerID,
		Type:     msgType,
		Content:  content,
	}})
	return err
}

// resolveWaiters unblocks sorties that were waiting on a completed
// dependency.
func (d *Scheduler) resolveWaiters(ctx context.Context, depID string) {
	for _, waiter := range d.waiters.take(depID) {
		st, err := d.sorties.Get(ctx, waiter)
		if err != nil || st.Status != sortie.StatusBlocked {
			continue
		}
		if err := d.handleDependencyBlock(ctx, st); err != nil {
			slog.Error("Failed to resolve waiting sortie",
				"sortie_id", waiter,
				"dependency", depID,
				"error", err)
		}
	}
}

// EscalateBlockers reassigns or fails sorties whose blocker outlived the
// configured timeout. A sortie is reassigned with a fresh specialist until
// the reassignment budget runs out, then failed with its pending dependents
// cancelled.
func (d *Scheduler) EscalateBlockers(ctx context.Context) error {
	cutoff := time.Now().Add(-d.cfg.BlockerTimeout)
	overdue, err := d.client.Sortie.Query().
		Where(
			sortie.StatusEQ(sortie.StatusBlocked),
			sortie.BlockedAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query overdue blockers: %w", err)
	}

	for _, st := range overdue {
		assignments, err := d.countAssignments(ctx, st.ID)
		if err != nil {
			return err
		}
		if assignments < maxReassignments {
			if err := d.reassign(ctx, st); err != nil {
				return err
			}
			continue
		}

		slog.Warn("Blocker escalation failing sortie",
			"sortie_id", st.ID,
			"assignments", assignments)
		if _, err := d.sorties.Fail(ctx, st.ID, "blocker persisted past escalation budget"); err != nil {
			return err
		}
		if st.MissionID != nil && *st.MissionID != "" {
			if err := d.cascadeCancel(ctx, *st.MissionID, st.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

// countAssignments counts sortie_assigned events in the sortie's stream.
func (d *Scheduler) countAssignments(ctx context.Context, sortieID string) (int, error) {
	counts, err := d.store.CountByType(ctx, eventstore.StreamSortie, sortieID)
	if err != nil {
		return 0, err
	}
	return counts[eventstore.TypeSortieAssigned], nil
}

// reassign hands a blocked sortie to a fresh specialist.
func (d *Scheduler) reassign(ctx context.Context, st *ent.Sortie) error {
	specialistID := ids.NewSpecialist()
	missionID := ""
	if st.MissionID != nil {
		missionID = *st.MissionID
	}

	spawn, err := d.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSpecialistSpawned,
		StreamType: eventstore.StreamSpecialist,
		StreamID:   specialistID,
		Payload: &eventstore.SpecialistSpawned{
			SpecialistID: specialistID,
			SortieID:     st.ID,
			MissionID:    missionID,
		},
	})
	if err != nil {
		return err
	}
	_, err = d.store.Append(ctx, eventstore.Envelope{
		EventType:   eventstore.TypeSortieAssigned,
		StreamType:  eventstore.StreamSortie,
		StreamID:    st.ID,
		CausationID: spawn.ID,
		Payload:     &eventstore.SortieAssigned{SortieID: st.ID, SpecialistID: specialistID},
	})
	if err != nil {
		return err
	}

	slog.Info("Reassigned blocked sortie",
		"sortie_id", st.ID,
		"specialist_id", specialistID)
	return nil
}

// cascadeCancel cancels every pending sortie that transitively depends on
// the failed one.
func (d *Scheduler) cascadeCancel(ctx context.Context, missionID, failedID string) error {
	all, err := d.sorties.List(ctx, lifecycle.ListFilter{MissionID: missionID})
	if err != nil {
		return err
	}

	dependents := map[string][]*ent.Sortie{}
	for _, st := range all {
		for _, dep := range st.Dependencies {
			dependents[dep] = append(dependents[dep], st)
		}
	}

	queue := []string{failedID}
	seen := map[string]bool{failedID: true}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, st := range dependents[id] {
			if seen[st.ID] {
				continue
			}
			seen[st.ID] = true
			queue = append(queue, st.ID)
			if st.Status != sortie.StatusPending {
				continue
			}
			if _, err := d.sorties.Cancel(ctx, st.ID,
				fmt.Sprintf("dependency %s failed", failedID)); err != nil {
				return err
			}
		}
	}
	return nil
}
