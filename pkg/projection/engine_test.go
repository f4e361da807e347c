package projection

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/database"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
	testdb "github.com/fleettools/fleetd/test/database"
)

func setupEngine(t *testing.T) (*database.Client, *eventstore.Store, *Engine) {
	t.Helper()
	client := testdb.NewTestClient(t)
	engine := NewEngine(client.Client)
	store := eventstore.NewStore(client.Client, engine, time.Second)
	return client, store, engine
}

func appendMission(t *testing.T, store *eventstore.Store, title string) string {
	t.Helper()
	missionID := ids.NewMission()
	_, err := store.Append(context.Background(), eventstore.Envelope{
		EventType:  eventstore.TypeMissionCreated,
		StreamType: eventstore.StreamMission,
		StreamID:   missionID,
		Payload:    &eventstore.MissionCreated{MissionID: missionID, Title: title},
	})
	require.NoError(t, err)
	return missionID
}

func appendSortie(t *testing.T, store *eventstore.Store, missionID, title string, deps []string) string {
	t.Helper()
	sortieID := ids.NewSortie()
	_, err := store.Append(context.Background(), eventstore.Envelope{
		EventType:  eventstore.TypeSortieCreated,
		StreamType: eventstore.StreamSortie,
		StreamID:   sortieID,
		Payload: &eventstore.SortieCreated{
			SortieID:     sortieID,
			MissionID:    missionID,
			Title:        title,
			Dependencies: deps,
		},
	})
	require.NoError(t, err)
	return sortieID
}

func TestEngine_MissionLifecycleUpdatesRow(t *testing.T) {
	client, store, _ := setupEngine(t)
	ctx := context.Background()

	missionID := appendMission(t, store, "ship the parser")

	m, err := client.Mission.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusPending, m.Status)
	assert.Equal(t, "ship the parser", m.Title)

	_, err = store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeMissionStarted,
		StreamType: eventstore.StreamMission,
		StreamID:   missionID,
		Payload:    &eventstore.MissionStatusChanged{MissionID: missionID},
	})
	require.NoError(t, err)

	m, err = client.Mission.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusInProgress, m.Status)
	assert.NotNil(t, m.StartedAt)
}

func TestEngine_SortieCompletionRecalculatesCounters(t *testing.T) {
	client, store, _ := setupEngine(t)
	ctx := context.Background()

	missionID := appendMission(t, store, "two sorties")
	first := appendSortie(t, store, missionID, "first", nil)
	appendSortie(t, store, missionID, "second", nil)

	m, err := client.Mission.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalSorties)
	assert.Equal(t, 0, m.CompletedSorties)

	specialistID := ids.NewSpecialist()
	for _, env := range []eventstore.Envelope{
		{
			EventType:  eventstore.TypeSortieAssigned,
			StreamType: eventstore.StreamSortie,
			StreamID:   first,
			Payload:    &eventstore.SortieAssigned{SortieID: first, SpecialistID: specialistID},
		},
		{
			EventType:  eventstore.TypeSortieStarted,
			StreamType: eventstore.StreamSortie,
			StreamID:   first,
			Payload:    &eventstore.SortieStarted{SortieID: first, SpecialistID: specialistID},
		},
		{
			EventType:  eventstore.TypeSortieCompleted,
			StreamType: eventstore.StreamSortie,
			StreamID:   first,
			Payload: &eventstore.SortieCompleted{
				SortieID:     first,
				SpecialistID: specialistID,
				TestsPassed:  true,
			},
		},
	} {
		_, err := store.Append(ctx, env)
		require.NoError(t, err)
	}

	m, err = client.Mission.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.CompletedSorties)

	st, err := client.Sortie.Get(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusCompleted, st.Status)
	assert.Equal(t, 100, st.Progress)
	assert.Equal(t, true, st.Result["tests_passed"])
}

func TestEngine_ProjectionRejectionRollsBackAppend(t *testing.T) {
	_, store, _ := setupEngine(t)
	ctx := context.Background()

	// An assignment for a sortie that never existed fails in the projection
	// handler; the append must not survive the rollback.
	_, err := store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieAssigned,
		StreamType: eventstore.StreamSortie,
		StreamID:   "srt-ghost",
		Payload:    &eventstore.SortieAssigned{SortieID: "srt-ghost", SpecialistID: "spc-1"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, faults.ErrNotFound)

	last, err := store.LastSequence(ctx)
	require.NoError(t, err)
	assert.Zero(t, last)
}

func TestEngine_RebuildReproducesProjectionState(t *testing.T) {
	client, store, engine := setupEngine(t)
	ctx := context.Background()

	missionID := appendMission(t, store, "rebuild target")
	first := appendSortie(t, store, missionID, "first", nil)
	second := appendSortie(t, store, missionID, "second", []string{first})

	specialistID := ids.NewSpecialist()
	_, err := store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieAssigned,
		StreamType: eventstore.StreamSortie,
		StreamID:   first,
		Payload:    &eventstore.SortieAssigned{SortieID: first, SpecialistID: specialistID},
	})
	require.NoError(t, err)
	_, err = store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieBlocked,
		StreamType: eventstore.StreamSortie,
		StreamID:   second,
		Payload: &eventstore.SortieBlocked{
			SortieID:  second,
			Reason:    "waiting on first",
			Category:  eventstore.BlockDependency,
			BlockedBy: first,
		},
	})
	require.NoError(t, err)

	before, err := client.Sortie.Get(ctx, second)
	require.NoError(t, err)

	require.NoError(t, engine.Rebuild(ctx))

	after, err := client.Sortie.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, before.Status, after.Status)
	assert.Equal(t, before.Dependencies, after.Dependencies)
	require.NotNil(t, after.BlockedReason)
	assert.Equal(t, "waiting on first", *after.BlockedReason)

	m, err := client.Mission.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalSorties)

	assigned, err := client.Sortie.Get(ctx, first)
	require.NoError(t, err)
	require.NotNil(t, assigned.AssignedTo)
	assert.Equal(t, specialistID, *assigned.AssignedTo)
}

func TestEngine_RebuildIsIdempotent(t *testing.T) {
	client, store, engine := setupEngine(t)
	ctx := context.Background()

	missionID := appendMission(t, store, "replayed twice")
	appendSortie(t, store, missionID, "only sortie", nil)

	require.NoError(t, engine.Rebuild(ctx))
	require.NoError(t, engine.Rebuild(ctx))

	n, err := client.Sortie.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	m, err := client.Mission.Get(ctx, missionID)
	require.NoError(t, err)
	assert.Equal(t, 1, m.TotalSorties)
}

func TestEngine_AuditOnlyEventsHaveNoProjectionEffect(t *testing.T) {
	client, store, _ := setupEngine(t)
	ctx := context.Background()

	// stream_snapshotted has no registered handler; it must land in the log
	// without touching any table.
	_, err := store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeStreamSnapshotted,
		StreamType: eventstore.StreamFleet,
		StreamID:   "fleet",
		Payload: &eventstore.StreamSnapshotted{
			StreamType:   eventstore.StreamSortie,
			StreamID:     "srt-1",
			FromSequence: 1,
			ToSequence:   4,
		},
	})
	require.NoError(t, err)

	last, err := store.LastSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), last)

	missions, err := client.Mission.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, missions)
}
