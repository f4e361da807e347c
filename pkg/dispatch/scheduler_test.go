package dispatch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/ent/specialist"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/database"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/mailbox"
	"github.com/fleettools/fleetd/pkg/models"
	"github.com/fleettools/fleetd/pkg/projection"
	testdb "github.com/fleettools/fleetd/test/database"
)

type fleet struct {
	client      *database.Client
	store       *eventstore.Store
	missions    *lifecycle.MissionService
	sorties     *lifecycle.SortieService
	locks       *locks.Service
	mail        *mailbox.Service
	specialists *SpecialistService
	scheduler   *Scheduler
}

func setupFleet(t *testing.T) *fleet {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := eventstore.NewStore(client.Client, projection.NewEngine(client.Client), time.Second)
	missions := lifecycle.NewMissionService(store, client.Client)
	sorties := lifecycle.NewSortieService(store, client.Client)
	lockSvc := locks.NewService(store, client.Client, &config.LockConfig{
		SweepInterval:  time.Minute,
		DefaultTimeout: time.Minute,
		MaxTimeout:     time.Hour,
	}, t.TempDir())
	mail := mailbox.NewService(store, client.Client)
	specialists := NewSpecialistService(store, client.Client, sorties, &config.LivenessConfig{
		StaleThreshold: time.Minute,
		HeartbeatCheck: time.Minute,
	})
	scheduler := NewScheduler(store, client.Client, missions, sorties, lockSvc, mail, specialists, nil,
		&config.DispatchConfig{BlockerTimeout: time.Minute, TickInterval: time.Minute})

	return &fleet{
		client:      client,
		store:       store,
		missions:    missions,
		sorties:     sorties,
		locks:       lockSvc,
		mail:        mail,
		specialists: specialists,
		scheduler:   scheduler,
	}
}

func (f *fleet) newMission(t *testing.T) *ent.Mission {
	t.Helper()
	m, err := f.missions.Create(context.Background(), models.CreateMissionRequest{Title: "mission"})
	require.NoError(t, err)
	return m
}

func (f *fleet) newSortie(t *testing.T, missionID, title string, deps []string) *ent.Sortie {
	t.Helper()
	st, err := f.sorties.Create(context.Background(), models.CreateSortieRequest{
		MissionID:    missionID,
		Title:        title,
		Dependencies: deps,
	})
	require.NoError(t, err)
	return st
}

// driveToCompleted starts and completes an assigned sortie as its assignee,
// then runs completion propagation.
func (f *fleet) driveToCompleted(t *testing.T, sortieID string, files []string) {
	t.Helper()
	ctx := context.Background()

	st, err := f.sorties.Get(ctx, sortieID)
	require.NoError(t, err)
	require.NotNil(t, st.AssignedTo)
	assignee := *st.AssignedTo

	_, err = f.sorties.Start(ctx, sortieID, assignee)
	require.NoError(t, err)
	_, err = f.sorties.Complete(ctx, sortieID, models.CompleteRequest{
		SpecialistID: assignee,
		Files:        files,
		TestsPassed:  true,
	})
	require.NoError(t, err)
	require.NoError(t, f.scheduler.OnSortieCompleted(ctx, sortieID))
}

func TestScheduler_StartMissionSpawnsIndependentSortiesInParallel(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	a := f.newSortie(t, m.ID, "a", nil)
	b := f.newSortie(t, m.ID, "b", nil)

	started, err := f.scheduler.StartMission(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusInProgress, started.Status)

	for _, id := range []string{a.ID, b.ID} {
		st, err := f.sorties.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, sortie.StatusAssigned, st.Status)
		assert.NotNil(t, st.AssignedTo)
	}

	spawned, err := f.client.Specialist.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, spawned)

	// Each assignment is caused by its spawn and shares its correlation chain.
	for _, id := range []string{a.ID, b.ID} {
		events, err := f.store.GetStream(ctx, eventstore.StreamSortie, id, 0, 0)
		require.NoError(t, err)
		assigned := events[len(events)-1]
		require.Equal(t, eventstore.TypeSortieAssigned, assigned.EventType)
		require.NotNil(t, assigned.CausationID)
		parent, err := f.store.GetByID(ctx, *assigned.CausationID)
		require.NoError(t, err)
		assert.Equal(t, eventstore.TypeSpecialistSpawned, parent.EventType)
		assert.Equal(t, parent.CorrelationID, assigned.CorrelationID)
	}
}

func TestScheduler_StartMissionRejectsCyclicPlan(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	a := f.newSortie(t, m.ID, "a", nil)
	b := f.newSortie(t, m.ID, "b", []string{a.ID})

	// Close the loop behind the service validation.
	_, err := f.client.Sortie.UpdateOneID(a.ID).
		SetDependencies([]string{b.ID}).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.scheduler.StartMission(ctx, m.ID)
	assert.ErrorIs(t, err, faults.ErrCyclicDependency)

	m, err = f.missions.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusPending, m.Status)
}

func TestScheduler_DependentSpawnsOnlyAfterDependencyCompletes(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	a := f.newSortie(t, m.ID, "a", nil)
	b := f.newSortie(t, m.ID, "b", []string{a.ID})

	_, err := f.scheduler.StartMission(ctx, m.ID)
	require.NoError(t, err)

	bRow, err := f.sorties.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusPending, bRow.Status)

	f.driveToCompleted(t, a.ID, nil)

	aRow, err := f.sorties.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusCompleted, aRow.Status)

	bRow, err = f.sorties.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusAssigned, bRow.Status)

	// The dependent's assignment is sequenced after the dependency's
	// completion in the global log.
	aEvents, err := f.store.GetStream(ctx, eventstore.StreamSortie, a.ID, 0, 0)
	require.NoError(t, err)
	var completedSeq int64
	for _, evt := range aEvents {
		if evt.EventType == eventstore.TypeSortieCompleted {
			completedSeq = evt.SequenceNumber
		}
	}
	require.NotZero(t, completedSeq)

	bEvents, err := f.store.GetStream(ctx, eventstore.StreamSortie, b.ID, 0, 0)
	require.NoError(t, err)
	assigned := bEvents[len(bEvents)-1]
	require.Equal(t, eventstore.TypeSortieAssigned, assigned.EventType)
	assert.Greater(t, assigned.SequenceNumber, completedSeq)
}

func TestScheduler_MissionCompletesWhenAllSortiesTerminal(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	a := f.newSortie(t, m.ID, "a", nil)
	b := f.newSortie(t, m.ID, "b", []string{a.ID})

	_, err := f.scheduler.StartMission(ctx, m.ID)
	require.NoError(t, err)

	f.driveToCompleted(t, a.ID, nil)
	f.driveToCompleted(t, b.ID, nil)

	done, err := f.missions.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusCompleted, done.Status)
	assert.Equal(t, 2, done.CompletedSorties)
}

func TestScheduler_ReviewRejectsUndeclaredFiles(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	st, err := f.sorties.Create(ctx, models.CreateSortieRequest{
		MissionID: m.ID,
		Title:     "scoped to api.go",
		Files:     []string{"pkg/api/server.go"},
	})
	require.NoError(t, err)

	_, err = f.scheduler.StartMission(ctx, m.ID)
	require.NoError(t, err)

	row, err := f.sorties.Get(ctx, st.ID)
	require.NoError(t, err)
	assignee := *row.AssignedTo
	_, err = f.sorties.Start(ctx, st.ID, assignee)
	require.NoError(t, err)
	_, err = f.sorties.Complete(ctx, st.ID, models.CompleteRequest{
		SpecialistID: assignee,
		Files:        []string{"pkg/api/server.go", "pkg/api/secret.go"},
		TestsPassed:  true,
	})
	require.NoError(t, err)
	require.NoError(t, f.scheduler.OnSortieCompleted(ctx, st.ID))

	row, err = f.sorties.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusInProgress, row.Status)
	assert.Zero(t, row.Progress)
	require.NotNil(t, row.ReviewFeedback)
	assert.Contains(t, *row.ReviewFeedback, "pkg/api/secret.go")
}

func TestScheduler_HandleBlockedResolvesCompletedDependency(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	a := f.newSortie(t, m.ID, "a", nil)
	b := f.newSortie(t, m.ID, "b", nil)

	_, err := f.scheduler.StartMission(ctx, m.ID)
	require.NoError(t, err)
	f.driveToCompleted(t, a.ID, nil)

	bRow, err := f.sorties.Get(ctx, b.ID)
	require.NoError(t, err)
	assignee := *bRow.AssignedTo
	_, err = f.sorties.Start(ctx, b.ID, assignee)
	require.NoError(t, err)
	_, err = f.sorties.Block(ctx, b.ID, models.BlockRequest{
		Reason:    "thought a was still running",
		Category:  eventstore.BlockDependency,
		BlockedBy: a.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.scheduler.HandleBlocked(ctx, b.ID))

	bRow, err = f.sorties.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusInProgress, bRow.Status)

	msgs, err := f.mail.Read(ctx, assignee, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	assert.Equal(t, "dependency_resolved", msgs[len(msgs)-1].Type)
}

func TestScheduler_HandleBlockedEscalatesLiveFileConflict(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	held, err := f.locks.Acquire(ctx, locks.AcquireRequest{
		File:         "pkg/api/server.go",
		SpecialistID: "spc-holder",
	})
	require.NoError(t, err)

	m := f.newMission(t)
	st := f.newSortie(t, m.ID, "needs the file", nil)
	_, err = f.scheduler.StartMission(ctx, m.ID)
	require.NoError(t, err)

	row, err := f.sorties.Get(ctx, st.ID)
	require.NoError(t, err)
	assignee := *row.AssignedTo
	_, err = f.sorties.Start(ctx, st.ID, assignee)
	require.NoError(t, err)
	_, err = f.sorties.Block(ctx, st.ID, models.BlockRequest{
		Reason:    "file reserved",
		Category:  eventstore.BlockFileConflict,
		BlockedBy: held.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.scheduler.HandleBlocked(ctx, st.ID))

	// Holder is live, so the sortie stays blocked and dispatch gets the
	// escalation.
	row, err = f.sorties.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusBlocked, row.Status)

	msgs, err := f.mail.Read(ctx, DispatchMailbox, 0, 0)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	assert.Equal(t, "blocker_escalation", msgs[len(msgs)-1].Type)
}

func TestScheduler_EscalateBlockersReassignsWithinBudget(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	st := f.newSortie(t, m.ID, "stuck", nil)
	_, err := f.scheduler.StartMission(ctx, m.ID)
	require.NoError(t, err)

	row, err := f.sorties.Get(ctx, st.ID)
	require.NoError(t, err)
	firstAssignee := *row.AssignedTo

	// Backdate the blocker past the escalation timeout.
	_, err = f.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieBlocked,
		StreamType: eventstore.StreamSortie,
		StreamID:   st.ID,
		OccurredAt: time.Now().Add(-2 * time.Minute),
		Payload: &eventstore.SortieBlocked{
			SortieID: st.ID,
			Reason:   "no progress",
			Category: eventstore.BlockError,
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.scheduler.EscalateBlockers(ctx))

	row, err = f.sorties.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusAssigned, row.Status)
	require.NotNil(t, row.AssignedTo)
	assert.NotEqual(t, firstAssignee, *row.AssignedTo)
	assert.Nil(t, row.BlockedReason)
}

func TestScheduler_EscalateBlockersFailsAfterBudgetAndCancelsDependents(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	a := f.newSortie(t, m.ID, "a", nil)
	b := f.newSortie(t, m.ID, "b", []string{a.ID})

	// Exhaust the reassignment budget, then backdate a blocker.
	for i := 0; i < maxReassignments; i++ {
		_, err := f.store.Append(ctx, eventstore.Envelope{
			EventType:  eventstore.TypeSortieAssigned,
			StreamType: eventstore.StreamSortie,
			StreamID:   a.ID,
			Payload:    &eventstore.SortieAssigned{SortieID: a.ID, SpecialistID: ids.NewSpecialist()},
		})
		require.NoError(t, err)
	}
	_, err := f.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSortieBlocked,
		StreamType: eventstore.StreamSortie,
		StreamID:   a.ID,
		OccurredAt: time.Now().Add(-2 * time.Minute),
		Payload: &eventstore.SortieBlocked{
			SortieID: a.ID,
			Reason:   "still stuck",
			Category: eventstore.BlockError,
		},
	})
	require.NoError(t, err)

	require.NoError(t, f.scheduler.EscalateBlockers(ctx))

	aRow, err := f.sorties.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusFailed, aRow.Status)

	bRow, err := f.sorties.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusCancelled, bRow.Status)
}

func TestSpecialistService_HeartbeatValidatesStatus(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	sp, err := f.specialists.Register(ctx, models.RegisterSpecialistRequest{SpecialistID: "spc-1"})
	require.NoError(t, err)
	assert.Equal(t, specialist.StatusRegistered, sp.Status)

	_, err = f.specialists.Heartbeat(ctx, "spc-1", "sleeping")
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	sp, err = f.specialists.Heartbeat(ctx, "spc-1", "working")
	require.NoError(t, err)
	assert.Equal(t, specialist.StatusWorking, sp.Status)

	_, err = f.specialists.Heartbeat(ctx, "spc-missing", "")
	assert.ErrorIs(t, err, faults.ErrNotFound)
}

func TestSpecialistService_SweepStaleBlocksInFlightSortie(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	m := f.newMission(t)
	st := f.newSortie(t, m.ID, "abandoned", nil)
	_, err := f.sorties.Assign(ctx, st.ID, "spc-gone")
	require.NoError(t, err)
	_, err = f.sorties.Start(ctx, st.ID, "spc-gone")
	require.NoError(t, err)

	// Register with a backdated last_seen, far past the threshold.
	_, err = f.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSpecialistRegistered,
		StreamType: eventstore.StreamSpecialist,
		StreamID:   "spc-gone",
		OccurredAt: time.Now().Add(-10 * time.Minute),
		Payload: &eventstore.SpecialistRegistered{
			SpecialistID: "spc-gone",
			SortieID:     st.ID,
		},
	})
	require.NoError(t, err)

	marked, err := f.specialists.SweepStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	sp, err := f.specialists.Get(ctx, "spc-gone")
	require.NoError(t, err)
	assert.Equal(t, specialist.StatusStale, sp.Status)

	row, err := f.sorties.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusBlocked, row.Status)
	require.NotNil(t, row.BlockedCategory)
	assert.Equal(t, sortie.BlockedCategoryError, *row.BlockedCategory)

	// A second sweep finds nothing new.
	marked, err = f.specialists.SweepStale(ctx)
	require.NoError(t, err)
	assert.Zero(t, marked)
}

func TestSpecialistService_DeregisterClearsAssignment(t *testing.T) {
	f := setupFleet(t)
	ctx := context.Background()

	_, err := f.specialists.Register(ctx, models.RegisterSpecialistRequest{
		SpecialistID: "spc-1",
		SortieID:     "srt-x",
	})
	require.NoError(t, err)

	sp, err := f.specialists.Deregister(ctx, "spc-1", "sortie finished")
	require.NoError(t, err)
	assert.Equal(t, specialist.StatusCompleted, sp.Status)
	assert.Nil(t, sp.CurrentSortie)
}
