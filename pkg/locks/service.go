// Package locks implements exclusive file reservations (CTK): TTL-bounded
// claims on canonicalised paths, owner-scoped release, and the expiry sweep.
// All mutations flow through the event store; the projection's partial unique
// index is the hard uniqueness guarantee.
package locks

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
)

// Service is the lock manager.
type Service struct {
	store       *eventstore.Store
	client      *ent.Client
	cfg         *config.LockConfig
	projectRoot string
}

// NewService creates a lock manager rooted at projectRoot; relative paths in
// acquire requests are resolved against it.
func NewService(store *eventstore.Store, client *ent.Client, cfg *config.LockConfig, projectRoot string) *Service {
	return &Service{store: store, client: client, cfg: cfg, projectRoot: projectRoot}
}

// AcquireRequest is a reservation attempt.
type AcquireRequest struct {
	File         string
	SpecialistID string
	Timeout      time.Duration
	Purpose      string
	Checksum     string
}

// Normalize canonicalises a caller path: absolute against the project root,
// cleaned, symlinks resolved where the path exists. Uniqueness of active
// locks is defined over this form.
func (s *Service) Normalize(file string) (string, error) {
	if file == "" {
		return "", faults.Validation("file", "required")
	}
	p := file
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.projectRoot, p)
	}
	p = filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p, nil
}

// Acquire reserves a file for a specialist. In one transaction it expires any
// stale active row on the path, then either returns the surviving holder as a
// conflict or appends ctk_reserved. The conflict error carries the holder
// snapshot as detail.
func (s *Service) Acquire(ctx context.Context, req AcquireRequest) (*ent.FileLock, error) {
	if req.SpecialistID == "" {
		return nil, faults.Validation("specialist_id", "required")
	}
	normalized, err := s.Normalize(req.File)
	if err != nil {
		return nil, err
	}

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = s.cfg.DefaultTimeout
	}
	if timeout > s.cfg.MaxTimeout {
		timeout = s.cfg.MaxTimeout
	}

	// Expire a stale holder first so the reservation below sees a free path.
	holder, err := s.activeHolder(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if holder != nil && !holder.ExpiresAt.After(time.Now()) {
		if err := s.expire(ctx, holder); err != nil {
			return nil, err
		}
		holder = nil
	}
	if holder != nil {
		// Audit the rejected attempt, then surface the holder.
		_, _ = s.store.Append(ctx, eventstore.Envelope{
			EventType:  eventstore.TypeLockConflict,
			StreamType: eventstore.StreamLock,
			StreamID:   holder.ID,
			Payload: &eventstore.LockConflict{
				LockID:         holder.ID,
				NormalizedPath: normalized,
				RequestedBy:    req.SpecialistID,
				HeldBy:         holder.ReservedBy,
			},
		})
		return nil, conflictError(holder)
	}

	lockID := ids.NewLock()
	expiresAt := time.Now().Add(timeout).UTC()
	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeLockReserved,
		StreamType: eventstore.StreamLock,
		StreamID:   lockID,
		Payload: &eventstore.LockReserved{
			LockID:         lockID,
			File:           req.File,
			NormalizedPath: normalized,
			ReservedBy:     req.SpecialistID,
			ExpiresAt:      expiresAt.Format(time.RFC3339Nano),
			Purpose:        req.Purpose,
			Checksum:       req.Checksum,
		},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, lockID)
}

// Release releases a lock held by the calling specialist.
func (s *Service) Release(ctx context.Context, lockID, specialistID string) (*ent.FileLock, error) {
	lock, err := s.Get(ctx, lockID)
	if err != nil {
		return nil, err
	}
	if lock.Status != filelock.StatusActive {
		return nil, faults.Newf(faults.KindPrecondition, "lock %s is %s", lockID, lock.Status)
	}
	if lock.ReservedBy != specialistID {
		return nil, faults.ErrNotOwner
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeLockReleased,
		StreamType: eventstore.StreamLock,
		StreamID:   lockID,
		Payload:    &eventstore.LockReleased{LockID: lockID, ReleasedBy: specialistID},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, lockID)
}

// ForceRelease bypasses ownership; the reason is recorded on the row.
func (s *Service) ForceRelease(ctx context.Context, lockID, reason string) (*ent.FileLock, error) {
	if reason == "" {
		return nil, faults.Validation("reason", "required")
	}
	lock, err := s.Get(ctx, lockID)
	if err != nil {
		return nil, err
	}
	if lock.Status != filelock.StatusActive {
		return nil, faults.Newf(faults.KindPrecondition, "lock %s is %s", lockID, lock.Status)
	}

	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeLockForceReleased,
		StreamType: eventstore.StreamLock,
		StreamID:   lockID,
		Payload:    &eventstore.LockForceReleased{LockID: lockID, Reason: reason},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, lockID)
}

// Extend pushes expires_at forward by additional time. Only the owner may
// extend, and only while the lock is still active.
func (s *Service) Extend(ctx context.Context, lockID, specialistID string, additional time.Duration) (*ent.FileLock, error) {
	if additional <= 0 {
		return nil, faults.Validation("additional_ms", "must be positive")
	}
	lock, err := s.Get(ctx, lockID)
	if err != nil {
		return nil, err
	}
	if lock.Status != filelock.StatusActive || !lock.ExpiresAt.After(time.Now()) {
		return nil, faults.Newf(faults.KindPrecondition, "lock %s is no longer active", lockID)
	}
	if lock.ReservedBy != specialistID {
		return nil, faults.ErrNotOwner
	}

	expiresAt := lock.ExpiresAt.Add(additional)
	if max := time.Now().Add(s.cfg.MaxTimeout); expiresAt.After(max) {
		expiresAt = max
	}
	_, err = s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeLockExtended,
		StreamType: eventstore.StreamLock,
		StreamID:   lockID,
		Payload: &eventstore.LockExtended{
			LockID:    lockID,
			ExpiresAt: expiresAt.UTC().Format(time.RFC3339Nano),
		},
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, lockID)
}

// Get loads one lock.
func (s *Service) Get(ctx context.Context, lockID string) (*ent.FileLock, error) {
	lock, err := s.client.FileLock.Get(ctx, lockID)
	if ent.IsNotFound(err) {
		return nil, faults.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lock: %w", err)
	}
	return lock, nil
}

// ListActive returns active locks, optionally filtered by owner.
func (s *Service) ListActive(ctx context.Context, reservedBy string) ([]*ent.FileLock, error) {
	q := s.client.FileLock.Query().
		Where(filelock.StatusEQ(filelock.StatusActive)).
		Order(ent.Asc(filelock.FieldReservedAt))
	if reservedBy != "" {
		q.Where(filelock.ReservedBy(reservedBy))
	}
	result, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active locks: %w", err)
	}
	return result, nil
}

// ReleaseAllOwnedBy releases every active lock held by a specialist, used
// when a sortie is cancelled or its owner goes stale.
func (s *Service) ReleaseAllOwnedBy(ctx context.Context, specialistID, reason string) (int, error) {
	owned, err := s.ListActive(ctx, specialistID)
	if err != nil {
		return 0, err
	}
	released := 0
	for _, lock := range owned {
		if _, err := s.ForceRelease(ctx, lock.ID, reason); err != nil {
			return released, err
		}
		released++
	}
	return released, nil
}

// Sweep expires every active lock past its expires_at and returns the count.
func (s *Service) Sweep(ctx context.Context) (int, error) {
	stale, err := s.client.FileLock.Query().
		Where(
			filelock.StatusEQ(filelock.StatusActive),
			filelock.ExpiresAtLTE(time.Now()),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale locks: %w", err)
	}
	expired := 0
	for _, lock := range stale {
		if err := s.expire(ctx, lock); err != nil {
			return expired, err
		}
		expired++
	}
	return expired, nil
}

func (s *Service) activeHolder(ctx context.Context, normalized string) (*ent.FileLock, error) {
	holder, err := s.client.FileLock.Query().
		Where(
			filelock.NormalizedPath(normalized),
			filelock.StatusEQ(filelock.StatusActive),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query active lock: %w", err)
	}
	return holder, nil
}

func (s *Service) expire(ctx context.Context, lock *ent.FileLock) error {
	_, err := s.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeLockExpired,
		StreamType: eventstore.StreamLock,
		StreamID:   lock.ID,
		Payload:    &eventstore.LockExpired{LockID: lock.ID},
	})
	return err
}

func conflictError(holder *ent.FileLock) error {
	return faults.New(faults.KindConflict, "file is reserved by another specialist").
		WithDetail(map[string]any{
			"lock_id":     holder.ID,
			"file":        holder.File,
			"reserved_by": holder.ReservedBy,
			"expires_at":  holder.ExpiresAt.Format(time.RFC3339Nano),
			"purpose":     string(holder.Purpose),
			"checksum":    holder.Checksum,
		})
}
