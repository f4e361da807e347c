package checkpoint

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/database"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/mailbox"
	"github.com/fleettools/fleetd/pkg/models"
	"github.com/fleettools/fleetd/pkg/projection"
	testdb "github.com/fleettools/fleetd/test/database"
)

type checkpointEnv struct {
	client   *database.Client
	store    *eventstore.Store
	missions *lifecycle.MissionService
	sorties  *lifecycle.SortieService
	locks    *locks.Service
	mail     *mailbox.Service
	cfg      *config.Config
	svc      *Service
}

func setupCheckpoints(t *testing.T) *checkpointEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := eventstore.NewStore(client.Client, projection.NewEngine(client.Client), time.Second)

	cfg := &config.Config{
		StateDir:    t.TempDir(),
		ProjectPath: t.TempDir(),
		Locks: config.LockConfig{
			SweepInterval:  time.Minute,
			DefaultTimeout: time.Hour,
			MaxTimeout:     2 * time.Hour,
		},
		Checkpoint: config.CheckpointConfig{
			ProgressThresholds:     []int{25, 50, 75},
			MinKeep:                1,
			RetentionDays:          30,
			CompletedRetentionDays: 30,
			MaxBytes:               1 << 20,
			WarnBytes:              1 << 19,
			ActivityThreshold:      time.Minute,
		},
	}

	missions := lifecycle.NewMissionService(store, client.Client)
	sorties := lifecycle.NewSortieService(store, client.Client)
	lockSvc := locks.NewService(store, client.Client, &cfg.Locks, cfg.ProjectPath)
	mail := mailbox.NewService(store, client.Client)

	return &checkpointEnv{
		client:   client,
		store:    store,
		missions: missions,
		sorties:  sorties,
		locks:    lockSvc,
		mail:     mail,
		cfg:      cfg,
		svc:      NewService(store, client.Client, missions, sorties, lockSvc, mail, cfg),
	}
}

// inFlightMission builds a mission with one in-progress sortie holding a lock
// and one undelivered message, the state a checkpoint is meant to capture.
func (e *checkpointEnv) inFlightMission(t *testing.T) (missionID, sortieID, lockID string) {
	t.Helper()
	ctx := context.Background()

	m, err := e.missions.Create(ctx, models.CreateMissionRequest{Title: "migration"})
	require.NoError(t, err)
	st, err := e.sorties.Create(ctx, models.CreateSortieRequest{
		MissionID: m.ID,
		Title:     "rewrite schema",
		Files:     []string{"pkg/database/schema.go"},
	})
	require.NoError(t, err)
	_, err = e.sorties.Assign(ctx, st.ID, "spc-1")
	require.NoError(t, err)
	_, err = e.sorties.Start(ctx, st.ID, "spc-1")
	require.NoError(t, err)
	_, err = e.sorties.Progress(ctx, st.ID, models.ProgressRequest{SpecialistID: "spc-1", Progress: 40})
	require.NoError(t, err)

	lock, err := e.locks.Acquire(ctx, locks.AcquireRequest{
		File:         "pkg/database/schema.go",
		SpecialistID: "spc-1",
	})
	require.NoError(t, err)

	_, err = e.mail.Append(ctx, "spc-1", []mailbox.Outgoing{{
		MessageID: "msg-pending",
		SenderID:  "dispatch",
		Type:      "task_update",
		Content:   map[string]any{"note": "schema review incoming"},
	}})
	require.NoError(t, err)

	return m.ID, st.ID, lock.ID
}

func TestService_CreateWritesRowAndFile(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	missionID, sortieID, _ := e.inFlightMission(t)

	row, err := e.svc.Create(ctx, missionID, eventstore.TriggerManual, "before schema rewrite", "operator")
	require.NoError(t, err)
	assert.Equal(t, missionID, row.MissionID)
	assert.True(t, row.Latest)
	assert.Equal(t, SchemaVersion, row.SchemaVersion)
	assert.Positive(t, row.SizeBytes)

	// The JSON copy and the latest pointer exist alongside the row.
	dir := e.cfg.CheckpointDir(missionID)
	for _, name := range []string{row.ID + ".json", "latest.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
	}

	doc, err := e.svc.Get(ctx, row.ID)
	require.NoError(t, err)
	require.Len(t, doc.Sorties, 1)
	assert.Equal(t, sortieID, doc.Sorties[0].SortieID)
	assert.Equal(t, 40, doc.Sorties[0].Progress)
	assert.Equal(t, "spc-1", doc.Sorties[0].AssignedTo)
	require.Len(t, doc.ActiveLocks, 1)
	require.Len(t, doc.PendingMessages, 1)
	assert.Equal(t, "msg-pending", doc.PendingMessages[0].MessageID)
	assert.NotEmpty(t, doc.RecoveryContext.NextSteps)
	assert.Positive(t, doc.LastEventSequence)

	// A second checkpoint demotes the first.
	row2, err := e.svc.Create(ctx, missionID, eventstore.TriggerManual, "", "operator")
	require.NoError(t, err)
	assert.True(t, row2.Latest)

	row, err = e.client.Checkpoint.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, row.Latest)

	latest, err := e.svc.Latest(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, row2.ID, latest.CheckpointID)
}

func TestService_CreateValidatesTriggerAndSize(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	missionID, _, _ := e.inFlightMission(t)

	_, err := e.svc.Create(ctx, missionID, "hourly", "", "")
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	e.cfg.Checkpoint.MaxBytes = 16
	_, err = e.svc.Create(ctx, missionID, eventstore.TriggerManual, "", "")
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))
}

func TestService_GetFallsBackToFile(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	missionID, _, _ := e.inFlightMission(t)
	row, err := e.svc.Create(ctx, missionID, eventstore.TriggerManual, "", "")
	require.NoError(t, err)

	// Losing the row leaves the file copy readable.
	require.NoError(t, e.client.Checkpoint.DeleteOneID(row.ID).Exec(ctx))

	doc, err := e.svc.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.ID, doc.CheckpointID)
	assert.Equal(t, missionID, doc.MissionID)

	_, err = e.svc.Get(ctx, "chk-missing")
	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestService_MaybeMilestoneFirstCrossingOnly(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	missionID, _, _ := e.inFlightMission(t)

	// 20% → 60% crosses 25 and 50; the highest threshold wins, once. The
	// checkpoint remembers which threshold fired, independent of the
	// completed-sortie ratio at the time.
	require.NoError(t, e.svc.MaybeMilestone(ctx, missionID, 20, 60))
	require.NoError(t, e.svc.MaybeMilestone(ctx, missionID, 20, 60))

	rows, err := e.svc.List(ctx, missionID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, eventstore.TriggerProgress, string(rows[0].Trigger))
	assert.Equal(t, 50, rows[0].MilestonePercent)
	assert.Zero(t, rows[0].ProgressPercent)

	// No threshold crossed: nothing happens.
	require.NoError(t, e.svc.MaybeMilestone(ctx, missionID, 60, 70))
	rows, err = e.svc.List(ctx, missionID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	// The next threshold up still fires exactly once.
	require.NoError(t, e.svc.MaybeMilestone(ctx, missionID, 60, 80))
	require.NoError(t, e.svc.MaybeMilestone(ctx, missionID, 60, 80))
	rows, err = e.svc.List(ctx, missionID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.ElementsMatch(t, []int{50, 75},
		[]int{rows[0].MilestonePercent, rows[1].MilestonePercent})
}

func TestService_RecoverRestoresSortiesLocksAndMessages(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	missionID, sortieID, lockID := e.inFlightMission(t)
	row, err := e.svc.Create(ctx, missionID, eventstore.TriggerManual, "", "")
	require.NoError(t, err)

	// Drift past the checkpoint: more progress, lock gone, message row lost.
	_, err = e.sorties.Progress(ctx, sortieID, models.ProgressRequest{SpecialistID: "spc-1", Progress: 80})
	require.NoError(t, err)
	_, err = e.locks.ForceRelease(ctx, lockID, "simulated crash cleanup")
	require.NoError(t, err)
	require.NoError(t, e.client.Message.DeleteOneID("msg-pending").Exec(ctx))

	// Dry run reports without touching anything.
	dry, err := e.svc.Recover(ctx, row.ID, true)
	require.NoError(t, err)
	assert.True(t, dry.DryRun)
	assert.Equal(t, 1, dry.SortiesRestored)
	st, err := e.sorties.Get(ctx, sortieID)
	require.NoError(t, err)
	assert.Equal(t, 80, st.Progress)

	report, err := e.svc.Recover(ctx, row.ID, false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.SortiesRestored)
	assert.Equal(t, 1, report.LocksReacquired)
	assert.Zero(t, report.LocksFailed)
	assert.Equal(t, 1, report.MessagesRequeued)
	assert.NotEmpty(t, report.RecoveryContext.MissionSummary)

	st, err = e.sorties.Get(ctx, sortieID)
	require.NoError(t, err)
	assert.Equal(t, 40, st.Progress)

	active, err := e.locks.ListActive(ctx, "")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "spc-1", active[0].ReservedBy)
	assert.Equal(t, filelock.StatusActive, active[0].Status)

	msgs, err := e.mail.Read(ctx, "spc-1", 0, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "msg-pending", msgs[0].ID)

	// Recovery converges: a second run changes nothing.
	again, err := e.svc.Recover(ctx, row.ID, false)
	require.NoError(t, err)
	assert.Zero(t, again.SortiesRestored)
	assert.Equal(t, 1, again.LocksReacquired)
	assert.Zero(t, again.MessagesRequeued)
	reacquired, err := e.locks.ListActive(ctx, "")
	require.NoError(t, err)
	assert.Len(t, reacquired, 1)
}

func TestService_DeleteRemovesRowAndFile(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	missionID, _, _ := e.inFlightMission(t)
	row, err := e.svc.Create(ctx, missionID, eventstore.TriggerManual, "", "")
	require.NoError(t, err)

	require.NoError(t, e.svc.Delete(ctx, row.ID, "superseded"))

	_, err = e.client.Checkpoint.Get(ctx, row.ID)
	assert.True(t, ent.IsNotFound(err))
	_, err = os.Stat(filepath.Join(e.cfg.CheckpointDir(missionID), row.ID+".json"))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, e.svc.Delete(ctx, row.ID, "again"), faults.ErrNotFound)
}

func TestService_PruneKeepsRecentForActiveMissions(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	missionID, _, _ := e.inFlightMission(t)
	var rows []*ent.Checkpoint
	for i := 0; i < 3; i++ {
		row, err := e.svc.Create(ctx, missionID, eventstore.TriggerManual, "", "")
		require.NoError(t, err)
		rows = append(rows, row)
		time.Sleep(2 * time.Millisecond)
	}

	// Age everything out; MinKeep still protects the newest.
	e.cfg.Checkpoint.RetentionDays = 0
	deleted, err := e.svc.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	remaining, err := e.svc.List(ctx, missionID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, rows[2].ID, remaining[0].ID)
}

func TestService_PruneCompletedMissionKeepsFinalOnly(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	m, err := e.missions.Create(ctx, models.CreateMissionRequest{Title: "done"})
	require.NoError(t, err)
	_, err = e.svc.Create(ctx, m.ID, eventstore.TriggerManual, "", "")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	final, err := e.svc.Create(ctx, m.ID, eventstore.TriggerManual, "", "")
	require.NoError(t, err)

	_, err = e.missions.Start(ctx, m.ID)
	require.NoError(t, err)
	_, err = e.missions.Complete(ctx, m.ID)
	require.NoError(t, err)

	deleted, err := e.svc.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, err := e.svc.List(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, final.ID, remaining[0].ID)
}

func TestService_DetectCompactedFindsIdleMissions(t *testing.T) {
	e := setupCheckpoints(t)
	ctx := context.Background()

	missionID, _, _ := e.inFlightMission(t)
	row, err := e.svc.Create(ctx, missionID, eventstore.TriggerManual, "", "")
	require.NoError(t, err)

	// Backdate activity far past the threshold.
	_, err = e.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeMissionStarted,
		StreamType: eventstore.StreamMission,
		StreamID:   missionID,
		OccurredAt: time.Now().Add(-10 * time.Minute),
		Payload:    &eventstore.MissionStatusChanged{MissionID: missionID},
	})
	require.NoError(t, err)

	detected, err := e.svc.DetectCompacted(ctx)
	require.NoError(t, err)
	require.Len(t, detected, 1)
	assert.Equal(t, missionID, detected[0].MissionID)
	assert.Equal(t, row.ID, detected[0].CheckpointID)
	assert.Greater(t, detected[0].IdleFor, e.cfg.Checkpoint.ActivityThreshold)

	// The context_compacted event itself counts as activity, so detection
	// does not repeat.
	detected, err = e.svc.DetectCompacted(ctx)
	require.NoError(t, err)
	assert.Empty(t, detected)
}
