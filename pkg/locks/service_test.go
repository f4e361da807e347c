package locks

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/projection"
	testdb "github.com/fleettools/fleetd/test/database"
)

func setupLocks(t *testing.T) *Service {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := eventstore.NewStore(client.Client, projection.NewEngine(client.Client), time.Second)
	cfg := &config.LockConfig{
		SweepInterval:  time.Minute,
		DefaultTimeout: time.Minute,
		MaxTimeout:     time.Hour,
	}
	return NewService(store, client.Client, cfg, t.TempDir())
}

func TestService_AcquireReservesNormalizedPath(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	lock, err := svc.Acquire(ctx, AcquireRequest{
		File:         "pkg/api/server.go",
		SpecialistID: "spc-1",
		Purpose:      eventstore.PurposeEdit,
	})
	require.NoError(t, err)

	assert.Equal(t, filelock.StatusActive, lock.Status)
	assert.Equal(t, "spc-1", lock.ReservedBy)
	assert.Equal(t, filepath.Join(svc.projectRoot, "pkg/api/server.go"), lock.NormalizedPath)
	assert.True(t, lock.ExpiresAt.After(time.Now()))
}

func TestService_AcquireConflictCarriesHolderDetail(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	held, err := svc.Acquire(ctx, AcquireRequest{File: "a.go", SpecialistID: "spc-1"})
	require.NoError(t, err)

	// Same file spelled differently still collides on the normalized path.
	_, err = svc.Acquire(ctx, AcquireRequest{File: "./a.go", SpecialistID: "spc-2"})
	require.Error(t, err)
	assert.Equal(t, faults.KindConflict, faults.KindOf(err))

	var fe *faults.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, held.ID, fe.Detail["lock_id"])
	assert.Equal(t, "spc-1", fe.Detail["reserved_by"])
}

func TestService_AcquireExpiresStaleHolderFirst(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	stale, err := svc.Acquire(ctx, AcquireRequest{
		File:         "b.go",
		SpecialistID: "spc-1",
		Timeout:      time.Millisecond,
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	fresh, err := svc.Acquire(ctx, AcquireRequest{File: "b.go", SpecialistID: "spc-2"})
	require.NoError(t, err)
	assert.Equal(t, "spc-2", fresh.ReservedBy)

	stale, err = svc.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, filelock.StatusExpired, stale.Status)
}

func TestService_ReleaseIsOwnerScoped(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	lock, err := svc.Acquire(ctx, AcquireRequest{File: "c.go", SpecialistID: "spc-1"})
	require.NoError(t, err)

	_, err = svc.Release(ctx, lock.ID, "spc-2")
	assert.ErrorIs(t, err, faults.ErrNotOwner)

	released, err := svc.Release(ctx, lock.ID, "spc-1")
	require.NoError(t, err)
	assert.Equal(t, filelock.StatusReleased, released.Status)

	// A released lock cannot be released again.
	_, err = svc.Release(ctx, lock.ID, "spc-1")
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))
}

func TestService_ForceReleaseRequiresReason(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	lock, err := svc.Acquire(ctx, AcquireRequest{File: "d.go", SpecialistID: "spc-1"})
	require.NoError(t, err)

	_, err = svc.ForceRelease(ctx, lock.ID, "")
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	forced, err := svc.ForceRelease(ctx, lock.ID, "holder went stale")
	require.NoError(t, err)
	assert.Equal(t, filelock.StatusForceReleased, forced.Status)
}

func TestService_ExtendPushesExpiry(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	lock, err := svc.Acquire(ctx, AcquireRequest{File: "e.go", SpecialistID: "spc-1"})
	require.NoError(t, err)

	_, err = svc.Extend(ctx, lock.ID, "spc-2", time.Minute)
	assert.ErrorIs(t, err, faults.ErrNotOwner)

	extended, err := svc.Extend(ctx, lock.ID, "spc-1", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, extended.ExpiresAt.After(lock.ExpiresAt))
}

func TestService_SweepExpiresOverdueLocks(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	overdue, err := svc.Acquire(ctx, AcquireRequest{
		File:         "f.go",
		SpecialistID: "spc-1",
		Timeout:      time.Millisecond,
	})
	require.NoError(t, err)
	live, err := svc.Acquire(ctx, AcquireRequest{File: "g.go", SpecialistID: "spc-1"})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	n, err := svc.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	overdue, err = svc.Get(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, filelock.StatusExpired, overdue.Status)

	live, err = svc.Get(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, filelock.StatusActive, live.Status)
}

func TestService_ReleaseAllOwnedBy(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	for _, f := range []string{"h.go", "i.go"} {
		_, err := svc.Acquire(ctx, AcquireRequest{File: f, SpecialistID: "spc-1"})
		require.NoError(t, err)
	}
	_, err := svc.Acquire(ctx, AcquireRequest{File: "j.go", SpecialistID: "spc-2"})
	require.NoError(t, err)

	released, err := svc.ReleaseAllOwnedBy(ctx, "spc-1", "sortie cancelled")
	require.NoError(t, err)
	assert.Equal(t, 2, released)

	remaining, err := svc.ListActive(ctx, "")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "spc-2", remaining[0].ReservedBy)
}

func TestService_ReacquireOutcomes(t *testing.T) {
	svc := setupLocks(t)
	ctx := context.Background()

	free, err := svc.Normalize("free.go")
	require.NoError(t, err)
	contested, err := svc.Normalize("contested.go")
	require.NoError(t, err)

	_, err = svc.Acquire(ctx, AcquireRequest{File: "contested.go", SpecialistID: "spc-9"})
	require.NoError(t, err)

	snaps := []Snapshot{
		{LockID: "lock-old-1", NormalizedPath: free, ReservedBy: "spc-1", ExpiresAt: time.Now().Add(time.Hour)},
		{LockID: "lock-old-2", NormalizedPath: contested, ReservedBy: "spc-1", ExpiresAt: time.Now().Add(time.Hour)},
		{LockID: "lock-old-3", NormalizedPath: free + ".expired", ReservedBy: "spc-1", ExpiresAt: time.Now().Add(-time.Hour)},
	}

	results, err := svc.Reacquire(ctx, snaps)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, OutcomeAcquired, results[0].Outcome)
	assert.NotEmpty(t, results[0].LockID)
	assert.Equal(t, OutcomeConflict, results[1].Outcome)
	assert.Equal(t, "spc-9", results[1].HeldBy)
	assert.Equal(t, OutcomeExpired, results[2].Outcome)

	// A second recovery run finds the restored lock and reports it acquired
	// without a second append.
	again, err := svc.Reacquire(ctx, snaps[:1])
	require.NoError(t, err)
	require.Len(t, again, 1)
	assert.Equal(t, OutcomeAcquired, again[0].Outcome)
	assert.Equal(t, results[0].LockID, again[0].LockID)
}
