package projection

import (
	"context"
	"fmt"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
)

// applyLockReserved inserts an active reservation. The partial unique index
// on (normalized_path) WHERE status='active' is the hard guarantee; the
// pre-check here exists to attach the holder snapshot to the conflict error.
func applyLockReserved(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.LockReserved
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	holder, err := tx.FileLock.Query().
		Where(
			filelock.NormalizedPath(p.NormalizedPath),
			filelock.StatusEQ(filelock.StatusActive),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to check active lock: %w", err)
	}
	if holder != nil {
		return lockConflict(holder)
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, p.ExpiresAt)
	if err != nil {
		return faults.Validation("expires_at", "must be RFC 3339")
	}

	builder := tx.FileLock.Create().
		SetID(p.LockID).
		SetFile(p.File).
		SetNormalizedPath(p.NormalizedPath).
		SetReservedBy(p.ReservedBy).
		SetReservedAt(evt.OccurredAt).
		SetExpiresAt(expiresAt).
		SetStatus(filelock.StatusActive)
	if p.Purpose != "" {
		builder.SetPurpose(filelock.Purpose(p.Purpose))
	}
	if p.Checksum != "" {
		builder.SetChecksum(p.Checksum)
	}
	if p.OriginalLockID != "" {
		builder.SetMetadata(map[string]any{"original_lock_id": p.OriginalLockID})
	}

	if _, err := builder.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return faults.New(faults.KindConflict, "file is reserved by another specialist")
		}
		return fmt.Errorf("failed to create lock row: %w", err)
	}
	return nil
}

func applyLockReleased(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.LockReleased
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.FileLock.UpdateOneID(p.LockID).
		SetStatus(filelock.StatusReleased).
		SetReleasedAt(evt.OccurredAt).
		Save(ctx)
	return lockUpdateErr(p.LockID, err)
}

func applyLockExpired(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.LockExpired
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.FileLock.UpdateOneID(p.LockID).
		SetStatus(filelock.StatusExpired).
		SetReleasedAt(evt.OccurredAt).
		Save(ctx)
	return lockUpdateErr(p.LockID, err)
}

func applyLockExtended(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.LockExtended
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, p.ExpiresAt)
	if err != nil {
		return faults.Validation("expires_at", "must be RFC 3339")
	}
	_, err = tx.FileLock.UpdateOneID(p.LockID).
		SetExpiresAt(expiresAt).
		Save(ctx)
	return lockUpdateErr(p.LockID, err)
}

func applyLockForceReleased(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.LockForceReleased
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}
	_, err := tx.FileLock.UpdateOneID(p.LockID).
		SetStatus(filelock.StatusForceReleased).
		SetReleasedAt(evt.OccurredAt).
		SetReleaseReason(p.Reason).
		Save(ctx)
	return lockUpdateErr(p.LockID, err)
}

// Recovery re-acquisition creates a fresh active lock under a new id; the
// original id rides along in metadata for audit.
func applyLockReacquired(ctx context.Context, tx *ent.Tx, evt *ent.Event) error {
	var p eventstore.LockReacquired
	if err := eventstore.Decode(evt.Data, &p); err != nil {
		return err
	}

	holder, err := tx.FileLock.Query().
		Where(
			filelock.NormalizedPath(p.NormalizedPath),
			filelock.StatusEQ(filelock.StatusActive),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to check active lock: %w", err)
	}
	if holder != nil {
		return lockConflict(holder)
	}

	expiresAt, err := time.Parse(time.RFC3339Nano, p.ExpiresAt)
	if err != nil {
		return faults.Validation("expires_at", "must be RFC 3339")
	}

	_, err = tx.FileLock.Create().
		SetID(p.LockID).
		SetFile(p.NormalizedPath).
		SetNormalizedPath(p.NormalizedPath).
		SetReservedBy(p.ReservedBy).
		SetReservedAt(evt.OccurredAt).
		SetExpiresAt(expiresAt).
		SetStatus(filelock.StatusActive).
		SetMetadata(map[string]any{"original_lock_id": p.OriginalLockID}).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return faults.New(faults.KindConflict, "file is reserved by another specialist")
		}
		return fmt.Errorf("failed to create lock row: %w", err)
	}
	return nil
}

// lockConflict builds the CONFLICT error carrying the holder snapshot that
// the API surfaces to the requesting specialist.
func lockConflict(holder *ent.FileLock) error {
	return faults.New(faults.KindConflict, "file is reserved by another specialist").
		WithDetail(map[string]any{
			"lock_id":     holder.ID,
			"file":        holder.File,
			"reserved_by": holder.ReservedBy,
			"expires_at":  holder.ExpiresAt.Format(time.RFC3339Nano),
			"purpose":     string(holder.Purpose),
		})
}

func lockUpdateErr(lockID string, err error) error {
	if err == nil {
		return nil
	}
	if ent.IsNotFound(err) {
		return faults.ErrNotFound
	}
	return fmt.Errorf("failed to update lock %s: %w", lockID, err)
}
