package locks

import (
	"context"
	"time"

	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
)

// Snapshot is a checkpointed lock, as stored in a checkpoint's active_locks.
type Snapshot struct {
	LockID         string    `json:"lock_id"`
	File           string    `json:"file"`
	NormalizedPath string    `json:"normalized_path"`
	ReservedBy     string    `json:"reserved_by"`
	ExpiresAt      time.Time `json:"expires_at"`
	Purpose        string    `json:"purpose,omitempty"`
	Checksum       string    `json:"checksum,omitempty"`
}

// Reacquire outcomes.
const (
	OutcomeAcquired = "acquired"
	OutcomeConflict = "conflict"
	OutcomeExpired  = "expired"
)

// ReacquireResult reports the outcome for one snapshot.
type ReacquireResult struct {
	Original Snapshot
	Outcome  string
	LockID   string // new id when acquired
	HeldBy   string // holder when conflicted
}

// Reacquire restores checkpointed locks during recovery. Each snapshot yields
// acquired, conflict or expired; conflicts and expiries become mission
// blockers upstream. Re-acquisition mints a new lock id and keeps the
// original in metadata, and is idempotent: a lock already restored from the
// same original is reported as acquired again without a second append.
func (s *Service) Reacquire(ctx context.Context, snapshots []Snapshot) ([]ReacquireResult, error) {
	results := make([]ReacquireResult, 0, len(snapshots))
	now := time.Now()

	for _, snap := range snapshots {
		if !snap.ExpiresAt.After(now) {
			results = append(results, ReacquireResult{Original: snap, Outcome: OutcomeExpired})
			continue
		}

		holder, err := s.activeHolder(ctx, snap.NormalizedPath)
		if err != nil {
			return results, err
		}
		if holder != nil {
			if original, _ := holder.Metadata["original_lock_id"].(string); original == snap.LockID {
				// Already restored by an earlier recovery run.
				results = append(results, ReacquireResult{
					Original: snap,
					Outcome:  OutcomeAcquired,
					LockID:   holder.ID,
				})
				continue
			}
			results = append(results, ReacquireResult{
				Original: snap,
				Outcome:  OutcomeConflict,
				HeldBy:   holder.ReservedBy,
			})
			continue
		}

		lockID := ids.NewLock()
		_, err = s.store.Append(ctx, eventstore.Envelope{
			EventType:  eventstore.TypeLockReacquired,
			StreamType: eventstore.StreamLock,
			StreamID:   lockID,
			Payload: &eventstore.LockReacquired{
				LockID:         lockID,
				OriginalLockID: snap.LockID,
				NormalizedPath: snap.NormalizedPath,
				ReservedBy:     snap.ReservedBy,
				ExpiresAt:      snap.ExpiresAt.UTC().Format(time.RFC3339Nano),
			},
		})
		if err != nil {
			if faults.KindOf(err) == faults.KindConflict {
				results = append(results, ReacquireResult{
					Original: snap,
					Outcome:  OutcomeConflict,
				})
				continue
			}
			return results, err
		}
		results = append(results, ReacquireResult{
			Original: snap,
			Outcome:  OutcomeAcquired,
			LockID:   lockID,
		})
	}
	return results, nil
}

// SnapshotActive captures every active lock for a checkpoint.
func (s *Service) SnapshotActive(ctx context.Context) ([]Snapshot, error) {
	active, err := s.client.FileLock.Query().
		Where(filelock.StatusEQ(filelock.StatusActive)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	snaps := make([]Snapshot, 0, len(active))
	for _, lock := range active {
		snaps = append(snaps, Snapshot{
			LockID:         lock.ID,
			File:           lock.File,
			NormalizedPath: lock.NormalizedPath,
			ReservedBy:     lock.ReservedBy,
			ExpiresAt:      lock.ExpiresAt,
			Purpose:        string(lock.Purpose),
			Checksum:       lock.Checksum,
		})
	}
	return snaps, nil
}
