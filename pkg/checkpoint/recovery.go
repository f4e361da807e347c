package checkpoint

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/mailbox"
)

// Recover restores the fleet from a checkpoint: sortie rows back to their
// snapshot states, lock re-acquisition, and re-queueing of undelivered
// messages. The whole procedure is idempotent — sortie restores converge to
// the snapshot, lock re-acquisition is deduplicated by original lock id, and
// message re-queues are deduplicated by message id. dryRun reports what would
// happen without appending anything.
func (s *Service) Recover(ctx context.Context, checkpointID string, dryRun bool) (*RecoveryReport, error) {
	start := time.Now()

	doc, err := s.Get(ctx, checkpointID)
	if err != nil {
		return nil, err
	}
	if doc.SchemaVersion > SchemaVersion {
		return nil, faults.Newf(faults.KindValidation,
			"checkpoint schema version %d is newer than supported %d",
			doc.SchemaVersion, SchemaVersion)
	}

	report := &RecoveryReport{
		CheckpointID:    checkpointID,
		MissionID:       doc.MissionID,
		DryRun:          dryRun,
		RecoveryContext: doc.RecoveryContext,
		Blockers:        append([]string(nil), doc.RecoveryContext.Blockers...),
	}
	if dryRun {
		report.SortiesRestored = len(doc.Sorties)
		report.LocksReacquired = countStillValid(doc.ActiveLocks)
		report.LocksFailed = len(doc.ActiveLocks) - report.LocksReacquired
		report.MessagesRequeued = len(doc.PendingMessages)
		report.DurationMS = time.Since(start).Milliseconds()
		return report, nil
	}

	recoveredEvt, err := s.restoreSorties(ctx, doc, report)
	if err != nil {
		return nil, err
	}

	lockResults, err := s.locks.Reacquire(ctx, doc.ActiveLocks)
	if err != nil {
		return nil, err
	}
	report.LockResults = lockResults
	for _, res := range lockResults {
		switch res.Outcome {
		case locks.OutcomeAcquired:
			report.LocksReacquired++
		case locks.OutcomeConflict:
			report.LocksFailed++
			report.Blockers = append(report.Blockers,
				fmt.Sprintf("lock on %s is held by %s", res.Original.NormalizedPath, res.HeldBy))
		case locks.OutcomeExpired:
			report.LocksFailed++
			report.Blockers = append(report.Blockers,
				fmt.Sprintf("lock on %s expired before recovery", res.Original.NormalizedPath))
		}
	}

	requeued, err := s.requeueMessages(ctx, doc)
	if err != nil {
		return nil, err
	}
	report.MessagesRequeued = requeued

	report.DurationMS = time.Since(start).Milliseconds()
	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:   eventstore.TypeFleetRecovered,
		StreamType:  eventstore.StreamFleet,
		StreamID:    doc.MissionID,
		CausationID: recoveredEvt,
		Payload: &eventstore.FleetRecovered{
			CheckpointID:     checkpointID,
			MissionID:        doc.MissionID,
			SortiesRestored:  report.SortiesRestored,
			LocksReacquired:  report.LocksReacquired,
			LocksFailed:      report.LocksFailed,
			MessagesRequeued: report.MessagesRequeued,
			DurationMS:       report.DurationMS,
		},
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Recovery complete",
		"checkpoint_id", checkpointID,
		"mission_id", doc.MissionID,
		"sorties_restored", report.SortiesRestored,
		"locks_reacquired", report.LocksReacquired,
		"locks_failed", report.LocksFailed,
		"messages_requeued", report.MessagesRequeued,
		"duration_ms", report.DurationMS)
	return report, nil
}

// restoreSorties resets projection rows to checkpoint states, skipping rows
// already in the snapshot state so reruns append nothing. Returns the id of
// the first restore event for causation chaining.
func (s *Service) restoreSorties(ctx context.Context, doc *Document, report *RecoveryReport) (string, error) {
	causation := ""
	for _, snap := range doc.Sorties {
		current, err := s.sorties.Get(ctx, snap.SortieID)
		if err != nil {
			return causation, err
		}
		if string(current.Status) == snap.Status &&
			current.Progress == snap.Progress &&
			assignedTo(current) == snap.AssignedTo {
			continue
		}
		restored, err := s.sorties.Restore(ctx, snap, causation)
		if err != nil {
			return causation, err
		}
		report.SortiesRestored++
		if causation == "" {
			// Chain subsequent recovery events to the first restore.
			events, err := s.store.GetStream(ctx, eventstore.StreamSortie, restored.ID, 0, 0)
			if err == nil && len(events) > 0 {
				causation = events[len(events)-1].ID
			}
		}
	}
	return causation, nil
}

// requeueMessages re-appends undelivered messages under their original ids;
// Append skips ids that already exist.
func (s *Service) requeueMessages(ctx context.Context, doc *Document) (int, error) {
	requeued := 0
	for _, snap := range doc.PendingMessages {
		n, err := s.mail.Append(ctx, snap.MailboxID, []mailbox.Outgoing{{
			MessageID: snap.MessageID,
			SenderID:  snap.SenderID,
			ThreadID:  snap.ThreadID,
			Type:      snap.Type,
			Content:   snap.Content,
			Priority:  snap.Priority,
		}})
		if err != nil {
			return requeued, err
		}
		requeued += n
	}
	return requeued, nil
}

func assignedTo(st *ent.Sortie) string {
	if st.AssignedTo != nil {
		return *st.AssignedTo
	}
	return ""
}

func countStillValid(snaps []locks.Snapshot) int {
	now := time.Now()
	valid := 0
	for _, snap := range snaps {
		if snap.ExpiresAt.After(now) {
			valid++
		}
	}
	return valid
}
