package eventstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
	testdb "github.com/fleettools/fleetd/test/database"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	// No applier: these tests exercise the log itself.
	return NewStore(client.Client, nil, time.Second)
}

func missionEnvelope(missionID string) Envelope {
	return Envelope{
		EventType:  TypeMissionCreated,
		StreamType: StreamMission,
		StreamID:   missionID,
		Payload:    &MissionCreated{MissionID: missionID, Title: "test mission"},
	}
}

func TestStore_AppendAssignsContiguousSequence(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		evt, err := store.Append(ctx, missionEnvelope(ids.NewMission()))
		require.NoError(t, err)
		assert.Equal(t, int64(i), evt.SequenceNumber)
	}

	last, err := store.LastSequence(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), last)
}

func TestStore_RootEventStartsItsOwnCorrelationChain(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	evt, err := store.Append(ctx, missionEnvelope(ids.NewMission()))
	require.NoError(t, err)
	assert.Equal(t, evt.ID, evt.CorrelationID)
	assert.Nil(t, evt.CausationID)
}

func TestStore_CausedEventInheritsCorrelation(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	missionID := ids.NewMission()
	root, err := store.Append(ctx, missionEnvelope(missionID))
	require.NoError(t, err)

	child, err := store.Append(ctx, Envelope{
		EventType:   TypeMissionStarted,
		StreamType:  StreamMission,
		StreamID:    missionID,
		CausationID: root.ID,
		Payload:     &MissionStatusChanged{MissionID: missionID},
	})
	require.NoError(t, err)

	require.NotNil(t, child.CausationID)
	assert.Equal(t, root.ID, *child.CausationID)
	assert.Equal(t, root.CorrelationID, child.CorrelationID)

	chain, err := store.GetByCorrelation(ctx, root.CorrelationID)
	require.NoError(t, err)
	assert.Len(t, chain, 2)
}

func TestStore_AppendRejectsUnknownCausation(t *testing.T) {
	store := setupStore(t)

	missionID := ids.NewMission()
	env := missionEnvelope(missionID)
	env.CausationID = "evt-does-not-exist"

	_, err := store.Append(context.Background(), env)
	require.Error(t, err)
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))
}

func TestStore_AppendRejectsDuplicateEventID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	env := missionEnvelope(ids.NewMission())
	env.EventID = ids.NewEvent()
	_, err := store.Append(ctx, env)
	require.NoError(t, err)

	dup := missionEnvelope(ids.NewMission())
	dup.EventID = env.EventID
	_, err = store.Append(ctx, dup)
	assert.ErrorIs(t, err, faults.ErrDuplicateEvent)
}

func TestStore_AppendRejectsUnknownEventType(t *testing.T) {
	store := setupStore(t)

	_, err := store.Append(context.Background(), Envelope{
		EventType:  "mission_teleported",
		StreamType: StreamMission,
		StreamID:   ids.NewMission(),
		Payload:    &MissionStatusChanged{MissionID: "msn-x"},
	})
	require.Error(t, err)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))
}

func TestStore_AppendValidatesPayload(t *testing.T) {
	store := setupStore(t)

	// Completion without passing tests is rejected before anything is written.
	_, err := store.Append(context.Background(), Envelope{
		EventType:  TypeSortieCompleted,
		StreamType: StreamSortie,
		StreamID:   "srt-1",
		Payload: &SortieCompleted{
			SortieID:     "srt-1",
			SpecialistID: "spc-1",
			TestsPassed:  false,
		},
	})
	require.Error(t, err)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	last, err := store.LastSequence(context.Background())
	require.NoError(t, err)
	assert.Zero(t, last)
}

func TestStore_GetStreamWindowsBySequence(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	missionID := ids.NewMission()
	root, err := store.Append(ctx, missionEnvelope(missionID))
	require.NoError(t, err)
	for _, eventType := range []string{TypeMissionStarted, TypeMissionCompleted} {
		_, err := store.Append(ctx, Envelope{
			EventType:  eventType,
			StreamType: StreamMission,
			StreamID:   missionID,
			Payload:    &MissionStatusChanged{MissionID: missionID},
		})
		require.NoError(t, err)
	}
	// An unrelated stream must not leak into the window.
	_, err = store.Append(ctx, missionEnvelope(ids.NewMission()))
	require.NoError(t, err)

	events, err := store.GetStream(ctx, StreamMission, missionID, 0, 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, root.ID, events[0].ID)

	tail, err := store.GetStream(ctx, StreamMission, missionID, events[0].SequenceNumber, 1)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, TypeMissionStarted, tail[0].EventType)
}

func TestStore_GetAfterSpansStreams(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := store.Append(ctx, missionEnvelope(ids.NewMission()))
		require.NoError(t, err)
	}

	events, err := store.GetAfter(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, int64(3), events[0].SequenceNumber)
	assert.Equal(t, int64(4), events[1].SequenceNumber)
}

func TestStore_CountByType(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	missionID := ids.NewMission()
	_, err := store.Append(ctx, missionEnvelope(missionID))
	require.NoError(t, err)
	_, err = store.Append(ctx, Envelope{
		EventType:  TypeMissionStarted,
		StreamType: StreamMission,
		StreamID:   missionID,
		Payload:    &MissionStatusChanged{MissionID: missionID},
	})
	require.NoError(t, err)

	counts, err := store.CountByType(ctx, StreamMission, missionID)
	require.NoError(t, err)
	assert.Equal(t, 1, counts[TypeMissionCreated])
	assert.Equal(t, 1, counts[TypeMissionStarted])
}

func TestNewPayload_DecodesKnownTypes(t *testing.T) {
	p, err := NewPayload(TypeSortieBlocked, map[string]any{
		"sortie_id": "srt-1",
		"reason":    "waiting on api.go",
		"category":  BlockFileConflict,
	})
	require.NoError(t, err)

	blocked, ok := p.(*SortieBlocked)
	require.True(t, ok)
	assert.Equal(t, "srt-1", blocked.SortieID)
	assert.Equal(t, BlockFileConflict, blocked.Category)
	assert.NoError(t, blocked.Validate())
}

func TestNewPayload_RejectsUnknownType(t *testing.T) {
	_, err := NewPayload("mission_teleported", map[string]any{})
	require.Error(t, err)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))
}
