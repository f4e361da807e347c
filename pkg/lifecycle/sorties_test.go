package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/models"
	"github.com/fleettools/fleetd/pkg/projection"
	testdb "github.com/fleettools/fleetd/test/database"
)

func setupLifecycle(t *testing.T) (*MissionService, *SortieService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := eventstore.NewStore(client.Client, projection.NewEngine(client.Client), time.Second)
	return NewMissionService(store, client.Client), NewSortieService(store, client.Client)
}

// startedSortie walks a sortie to in_progress and returns it with its
// assignee.
func startedSortie(t *testing.T, sorties *SortieService, missionID string) (*ent.Sortie, string) {
	t.Helper()
	ctx := context.Background()

	st, err := sorties.Create(ctx, models.CreateSortieRequest{MissionID: missionID, Title: "work item"})
	require.NoError(t, err)
	st, err = sorties.Assign(ctx, st.ID, "spc-1")
	require.NoError(t, err)
	st, err = sorties.Start(ctx, st.ID, "spc-1")
	require.NoError(t, err)
	return st, "spc-1"
}

func TestSortieService_CreateRejectsUnknownDependency(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)

	_, err = sorties.Create(ctx, models.CreateSortieRequest{
		MissionID:    m.ID,
		Title:        "depends on nothing real",
		Dependencies: []string{"srt-ghost"},
	})
	require.Error(t, err)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))
}

func TestSortieService_CreateRejectsDependencyCycle(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)

	a, err := sorties.Create(ctx, models.CreateSortieRequest{MissionID: m.ID, Title: "a"})
	require.NoError(t, err)
	b, err := sorties.Create(ctx, models.CreateSortieRequest{
		MissionID:    m.ID,
		Title:        "b",
		Dependencies: []string{a.ID},
	})
	require.NoError(t, err)

	// Diamond-shaped fan-in stays legal.
	_, err = sorties.Create(ctx, models.CreateSortieRequest{
		MissionID:    m.ID,
		Title:        "c",
		Dependencies: []string{b.ID, a.ID},
	})
	require.NoError(t, err)
}

func TestHasCycle(t *testing.T) {
	assert.False(t, HasCycle(map[string][]string{
		"a": nil,
		"b": {"a"},
		"c": {"a", "b"},
	}))
	assert.True(t, HasCycle(map[string][]string{
		"a": {"b"},
		"b": {"c"},
		"c": {"a"},
	}))
	assert.True(t, HasCycle(map[string][]string{"a": {"a"}}))
}

func TestSortieService_StandaloneSortiesCannotHaveDependencies(t *testing.T) {
	_, sorties := setupLifecycle(t)

	_, err := sorties.Create(context.Background(), models.CreateSortieRequest{
		Title:        "standalone",
		Dependencies: []string{"srt-1"},
	})
	require.Error(t, err)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))
}

func TestSortieService_OnlyAssigneeMayStart(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, err := sorties.Create(ctx, models.CreateSortieRequest{MissionID: m.ID, Title: "guarded"})
	require.NoError(t, err)
	_, err = sorties.Assign(ctx, st.ID, "spc-1")
	require.NoError(t, err)

	_, err = sorties.Start(ctx, st.ID, "spc-2")
	assert.ErrorIs(t, err, faults.ErrNotAssigned)

	started, err := sorties.Start(ctx, st.ID, "spc-1")
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusInProgress, started.Status)
}

func TestSortieService_ProgressIsMonotonicWithinEpisode(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, assignee := startedSortie(t, sorties, m.ID)

	_, err = sorties.Progress(ctx, st.ID, models.ProgressRequest{SpecialistID: assignee, Progress: 60})
	require.NoError(t, err)

	_, err = sorties.Progress(ctx, st.ID, models.ProgressRequest{SpecialistID: assignee, Progress: 40})
	require.Error(t, err)
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))

	// Equal progress is a legal no-op re-report.
	updated, err := sorties.Progress(ctx, st.ID, models.ProgressRequest{SpecialistID: assignee, Progress: 60})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.Progress)
}

func TestSortieService_CompleteRequiresPassingTests(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, assignee := startedSortie(t, sorties, m.ID)

	_, err = sorties.Complete(ctx, st.ID, models.CompleteRequest{
		SpecialistID: assignee,
		TestsPassed:  false,
	})
	require.Error(t, err)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	done, err := sorties.Complete(ctx, st.ID, models.CompleteRequest{
		SpecialistID: assignee,
		Summary:      "done",
		TestsPassed:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusCompleted, done.Status)
	assert.Equal(t, 100, done.Progress)
}

func TestSortieService_BlockValidatesCategory(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, _ := startedSortie(t, sorties, m.ID)

	_, err = sorties.Block(ctx, st.ID, models.BlockRequest{Reason: "stuck", Category: "weather"})
	require.Error(t, err)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	blocked, err := sorties.Block(ctx, st.ID, models.BlockRequest{
		Reason:   "need srt-0 first",
		Category: eventstore.BlockDependency,
	})
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusBlocked, blocked.Status)
	require.NotNil(t, blocked.BlockedReason)

	unblocked, err := sorties.Unblock(ctx, st.ID, "dependency landed")
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusInProgress, unblocked.Status)
	assert.Nil(t, unblocked.BlockedReason)
}

func TestSortieService_ReviewRejectResetsProgress(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, assignee := startedSortie(t, sorties, m.ID)
	_, err = sorties.Complete(ctx, st.ID, models.CompleteRequest{SpecialistID: assignee, TestsPassed: true})
	require.NoError(t, err)

	inReview, err := sorties.OpenReview(ctx, st.ID, "dispatch")
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusReview, inReview.Status)

	_, err = sorties.Reject(ctx, st.ID, models.ReviewRequest{Reviewer: "dispatch"})
	require.Error(t, err)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	reopened, err := sorties.Reject(ctx, st.ID, models.ReviewRequest{
		Reviewer: "dispatch",
		Feedback: "tests cover the happy path only",
	})
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusInProgress, reopened.Status)
	assert.Zero(t, reopened.Progress)
	require.NotNil(t, reopened.ReviewFeedback)
}

func TestSortieService_ReviewApproveFinalizesCompletion(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, assignee := startedSortie(t, sorties, m.ID)
	_, err = sorties.Complete(ctx, st.ID, models.CompleteRequest{SpecialistID: assignee, TestsPassed: true})
	require.NoError(t, err)
	_, err = sorties.OpenReview(ctx, st.ID, "dispatch")
	require.NoError(t, err)

	approved, err := sorties.Approve(ctx, st.ID, models.ReviewRequest{Reviewer: "dispatch"})
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusCompleted, approved.Status)

	// Approving outside review is refused.
	_, err = sorties.Approve(ctx, st.ID, models.ReviewRequest{Reviewer: "dispatch"})
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))
}

func TestSortieService_RestoreResetsToSnapshot(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, assignee := startedSortie(t, sorties, m.ID)
	_, err = sorties.Progress(ctx, st.ID, models.ProgressRequest{SpecialistID: assignee, Progress: 80})
	require.NoError(t, err)

	restored, err := sorties.Restore(ctx, SortieSnapshot{
		SortieID:   st.ID,
		Status:     string(sortie.StatusInProgress),
		AssignedTo: assignee,
		Progress:   30,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusInProgress, restored.Status)
	assert.Equal(t, 30, restored.Progress)
}

func TestSortieService_TerminalStatesRejectTransitions(t *testing.T) {
	missions, sorties := setupLifecycle(t)
	ctx := context.Background()

	m, err := missions.Create(ctx, models.CreateMissionRequest{Title: "m"})
	require.NoError(t, err)
	st, err := sorties.Create(ctx, models.CreateSortieRequest{MissionID: m.ID, Title: "doomed"})
	require.NoError(t, err)

	cancelled, err := sorties.Cancel(ctx, st.ID, "descoped")
	require.NoError(t, err)
	assert.Equal(t, sortie.StatusCancelled, cancelled.Status)

	_, err = sorties.Assign(ctx, st.ID, "spc-1")
	assert.Equal(t, faults.KindPrecondition, faults.KindOf(err))
}
