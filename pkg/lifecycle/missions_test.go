package lifecycle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/models"
)

func TestMissionService_CreateStartsPending(t *testing.T) {
	missions, _ := setupLifecycle(t)

	m, err := missions.Create(context.Background(), models.CreateMissionRequest{
		Title:    "refactor storage",
		Priority: "high",
	})
	require.NoError(t, err)
	assert.Equal(t, mission.StatusPending, m.Status)
	assert.Equal(t, mission.PriorityHigh, m.Priority)
}

func TestMissionService_CreateValidates(t *testing.T) {
	missions, _ := setupLifecycle(t)
	ctx := context.Background()

	_, err := missions.Create(ctx, models.CreateMissionRequest{})
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	_, err = missions.Create(ctx, models.CreateMissionRequest{Title: "x", Priority: "asap"})
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))
}

func TestMissionService_TransitionsAreGuarded(t *testing.T) {
	missions, _ := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)

	// pending → completed skips in_progress.
	_, err = missions.Complete(ctx, m.ID)
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))

	started, err := missions.Start(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusInProgress, started.Status)

	_, err = missions.Start(ctx, m.ID)
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))
}

func TestMissionService_CompleteRefusedWithOpenSorties(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, err := sorties.Create(ctx, models.CreateSortieRequest{MissionID: m.ID, Title: "open work"})
	require.NoError(t, err)
	_, err = missions.Start(ctx, m.ID)
	require.NoError(t, err)

	_, err = missions.Complete(ctx, m.ID)
	require.Error(t, err)
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))

	_, err = sorties.Cancel(ctx, st.ID, "descoped")
	require.NoError(t, err)

	done, err := missions.Complete(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, mission.StatusCompleted, done.Status)
	assert.NotNil(t, done.CompletedAt)
}

func TestMissionService_CancelFromAnyNonTerminalState(t *testing.T) {
	missions, _ := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)

	cancelled, err := missions.Cancel(ctx, m.ID, "no longer needed")
	require.NoError(t, err)
	assert.Equal(t, mission.StatusCancelled, cancelled.Status)

	_, err = missions.Cancel(ctx, m.ID, "twice")
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))
}

func TestMissionService_StatsAggregatesSorties(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, assignee := startedSortie(t, sorties, m.ID)
	_, err = sorties.Complete(ctx, st.ID, models.CompleteRequest{SpecialistID: assignee, TestsPassed: true})
	require.NoError(t, err)

	blocked, _ := startedSortie(t, sorties, m.ID)
	_, err = sorties.Block(ctx, blocked.ID, models.BlockRequest{
		Reason:   "waiting on review",
		Category: "clarification",
	})
	require.NoError(t, err)

	stats, err := missions.Stats(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSorties)
	assert.Equal(t, 1, stats.CompletedSorties)
	assert.Equal(t, 50, stats.ProgressPercent)
	assert.Equal(t, 1, stats.ByStatus["completed"])
	assert.Equal(t, 1, stats.ByStatus["blocked"])
	require.Len(t, stats.Blockers, 1)
	assert.Equal(t, "waiting on review", stats.Blockers[0])
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0, ProgressPercent(0, 0))
	assert.Equal(t, 33, ProgressPercent(3, 1))
	assert.Equal(t, 100, ProgressPercent(4, 4))
}
