package compaction

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/ent/event"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/snapshot"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/database"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/models"
	"github.com/fleettools/fleetd/pkg/projection"
	testdb "github.com/fleettools/fleetd/test/database"
)

type countingPruner struct{ calls int }

func (p *countingPruner) Prune(ctx context.Context) (int, error) {
	p.calls++
	return 0, nil
}

type compactionEnv struct {
	client   *database.Client
	store    *eventstore.Store
	engine   *projection.Engine
	missions *lifecycle.MissionService
	sorties  *lifecycle.SortieService
	cfg      *config.Config
	pruner   *countingPruner
	svc      *Service
}

func setupCompaction(t *testing.T, thresholdEvents int) *compactionEnv {
	t.Helper()
	client := testdb.NewTestClient(t)
	engine := projection.NewEngine(client.Client)
	store := eventstore.NewStore(client.Client, engine, time.Second)

	cfg := &config.Config{
		StateDir: t.TempDir(),
		Compaction: config.CompactionConfig{
			ThresholdEvents: thresholdEvents,
			AgeDays:         30,
			Interval:        time.Minute,
		},
	}
	pruner := &countingPruner{}
	return &compactionEnv{
		client:   client,
		store:    store,
		engine:   engine,
		missions: lifecycle.NewMissionService(store, client.Client),
		sorties:  lifecycle.NewSortieService(store, client.Client),
		cfg:      cfg,
		pruner:   pruner,
		svc:      NewService(store, client.Client, cfg, pruner),
	}
}

// busyMission generates enough sortie events to cross a small threshold.
func (e *compactionEnv) busyMission(t *testing.T) (missionID, sortieID string) {
	t.Helper()
	ctx := context.Background()

	m, err := e.missions.Create(ctx, models.CreateMissionRequest{Title: "churn"})
	require.NoError(t, err)
	st, err := e.sorties.Create(ctx, models.CreateSortieRequest{MissionID: m.ID, Title: "busy"})
	require.NoError(t, err)
	_, err = e.sorties.Assign(ctx, st.ID, "spc-1")
	require.NoError(t, err)
	_, err = e.sorties.Start(ctx, st.ID, "spc-1")
	require.NoError(t, err)
	for _, p := range []int{10, 20, 30, 40, 50} {
		_, err = e.sorties.Progress(ctx, st.ID, models.ProgressRequest{SpecialistID: "spc-1", Progress: p})
		require.NoError(t, err)
	}
	return m.ID, st.ID
}

func TestService_RunOnceArchivesBusyStreams(t *testing.T) {
	e := setupCompaction(t, 5)
	ctx := context.Background()

	_, sortieID := e.busyMission(t)

	liveBefore, err := e.client.Event.Query().
		Where(event.StreamType(eventstore.StreamSortie), event.StreamID(sortieID)).
		Count(ctx)
	require.NoError(t, err)
	require.Greater(t, liveBefore, 5)

	archived, err := e.svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, liveBefore, archived)
	assert.Equal(t, 1, e.pruner.calls)

	// Live events moved to the archive table.
	liveAfter, err := e.client.Event.Query().
		Where(event.StreamType(eventstore.StreamSortie), event.StreamID(sortieID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, liveAfter)
	rows, err := e.client.ArchivedEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, liveBefore, rows)

	// A covering snapshot of the projection state exists.
	snap, err := e.client.Snapshot.Query().
		Where(snapshot.StreamType(eventstore.StreamSortie), snapshot.StreamID(sortieID)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, float64(50), snap.State["progress"])
	assert.Greater(t, snap.ToSequence, snap.FromSequence)

	// An on-disk segment mirrors the archive.
	matches, err := filepath.Glob(filepath.Join(e.cfg.ArchiveDir(), "events_*.log"))
	require.NoError(t, err)
	require.NotEmpty(t, matches)
	raw, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.NotEmpty(t, raw)

	// The audit trail records the pass on the fleet stream.
	counts, err := e.store.CountByType(ctx, eventstore.StreamFleet, sortieID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[eventstore.TypeStreamSnapshotted])
	assert.Equal(t, 1, counts[eventstore.TypeEventsArchived])
}

func TestService_RunOnceSkipsQuietAndFleetStreams(t *testing.T) {
	e := setupCompaction(t, 100)
	ctx := context.Background()

	e.busyMission(t)

	archived, err := e.svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, archived)

	rows, err := e.client.ArchivedEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, rows)
}

func TestService_SequenceNumbersSurviveCompaction(t *testing.T) {
	e := setupCompaction(t, 5)
	ctx := context.Background()

	e.busyMission(t)

	before, err := e.store.LastSequence(ctx)
	require.NoError(t, err)
	_, err = e.svc.RunOnce(ctx)
	require.NoError(t, err)

	// Appends continue the global sequence with no gap and no reuse, even
	// though the archived rows are gone from the live table. The pass itself
	// appended two fleet audit events.
	m, err := e.missions.Create(ctx, models.CreateMissionRequest{Title: "after"})
	require.NoError(t, err)
	events, err := e.store.GetStream(ctx, eventstore.StreamMission, m.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, before+3, events[0].SequenceNumber)

	last, err := e.store.LastSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, before+3, last)
}

func TestService_ArchivedEventsStayReadable(t *testing.T) {
	e := setupCompaction(t, 5)
	ctx := context.Background()

	_, sortieID := e.busyMission(t)

	liveEvents, err := e.store.GetStream(ctx, eventstore.StreamSortie, sortieID, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, liveEvents)
	firstID := liveEvents[0].ID
	correlationID := liveEvents[0].CorrelationID

	archived, err := e.svc.RunOnce(ctx)
	require.NoError(t, err)
	require.Equal(t, len(liveEvents), archived)

	// The stream reads back whole after its rows moved to the archive.
	after, err := e.store.GetStream(ctx, eventstore.StreamSortie, sortieID, 0, 0)
	require.NoError(t, err)
	require.Len(t, after, len(liveEvents))
	for i, evt := range liveEvents {
		assert.Equal(t, evt.ID, after[i].ID)
		assert.Equal(t, evt.SequenceNumber, after[i].SequenceNumber)
	}

	// Single-event and correlation lookups follow events into the archive.
	got, err := e.store.GetByID(ctx, firstID)
	require.NoError(t, err)
	assert.Equal(t, firstID, got.ID)

	chain, err := e.store.GetByCorrelation(ctx, correlationID)
	require.NoError(t, err)
	assert.NotEmpty(t, chain)
	for i := 1; i < len(chain); i++ {
		assert.Greater(t, chain[i].SequenceNumber, chain[i-1].SequenceNumber)
	}

	counts, err := e.store.CountByType(ctx, eventstore.StreamSortie, sortieID)
	require.NoError(t, err)
	assert.Equal(t, 5, counts[eventstore.TypeSortieProgressed])
}

func TestService_RebuildReplaysArchiveFirst(t *testing.T) {
	e := setupCompaction(t, 5)
	ctx := context.Background()

	missionID, sortieID := e.busyMission(t)
	_, err := e.svc.RunOnce(ctx)
	require.NoError(t, err)

	require.NoError(t, e.engine.Rebuild(ctx))

	// Projection state is reproduced from archived events plus the live
	// remainder.
	st, err := e.sorties.Get(ctx, sortieID)
	require.NoError(t, err)
	assert.Equal(t, 50, st.Progress)
	require.NotNil(t, st.AssignedTo)
	assert.Equal(t, "spc-1", *st.AssignedTo)

	m, err := e.missions.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusPending, m.Status)
	assert.Equal(t, 1, m.TotalSorties)
}

func TestService_RunOnceIsIdempotentPerSnapshot(t *testing.T) {
	e := setupCompaction(t, 5)
	ctx := context.Background()

	_, sortieID := e.busyMission(t)
	first, err := e.svc.RunOnce(ctx)
	require.NoError(t, err)
	require.Positive(t, first)

	// The stream is now empty of live events; a second pass archives nothing
	// new for it.
	second, err := e.svc.RunOnce(ctx)
	require.NoError(t, err)
	assert.Zero(t, second)

	snaps, err := e.client.Snapshot.Query().
		Where(snapshot.StreamID(sortieID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, snaps)
}
