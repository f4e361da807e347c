package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/models"
	"github.com/fleettools/fleetd/pkg/projection"
	testdb "github.com/fleettools/fleetd/test/database"
)

func TestHeuristic_FeatureStrategyChainsSteps(t *testing.T) {
	plan, err := Heuristic{}.Plan(context.Background(),
		"add the endpoint; write the handler tests; update docs/api.md", StrategyFeature)
	require.NoError(t, err)

	require.Len(t, plan.Sorties, 3)
	assert.Empty(t, plan.Sorties[0].DependsOn)
	assert.Equal(t, []string{"s1"}, plan.Sorties[1].DependsOn)
	assert.Equal(t, []string{"s2"}, plan.Sorties[2].DependsOn)
	assert.Equal(t, []string{"docs/api.md"}, plan.Sorties[2].Files)
}

func TestHeuristic_FileStrategySequencesSharedFiles(t *testing.T) {
	plan, err := Heuristic{}.Plan(context.Background(),
		"refactor pkg/api/server.go\nadd metrics to pkg/api/server.go\nrewrite README.md", StrategyFile)
	require.NoError(t, err)

	require.Len(t, plan.Sorties, 3)
	// Steps 1 and 2 touch the same file and run in sequence; step 3 is
	// independent and parallel.
	assert.Empty(t, plan.Sorties[0].DependsOn)
	assert.Equal(t, []string{"s1"}, plan.Sorties[1].DependsOn)
	assert.Empty(t, plan.Sorties[2].DependsOn)
}

func TestHeuristic_RiskStrategyLeadsWithSpike(t *testing.T) {
	plan, err := Heuristic{}.Plan(context.Background(),
		"migrate the store\nswap the driver", StrategyRisk)
	require.NoError(t, err)

	require.Len(t, plan.Sorties, 3)
	spike := plan.Sorties[0]
	assert.Equal(t, "s1", spike.Key)
	assert.Contains(t, spike.Title, "Scope and de-risk")
	assert.Equal(t, "high", spike.Priority)
	for _, s := range plan.Sorties[1:] {
		assert.Equal(t, []string{"s1"}, s.DependsOn)
	}
}

func TestHeuristic_PlanValidatesInput(t *testing.T) {
	_, err := Heuristic{}.Plan(context.Background(), "   ", StrategyFeature)
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	_, err = Heuristic{}.Plan(context.Background(), "do the thing", "vibes")
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	// A single-step task without separators still plans.
	plan, err := Heuristic{}.Plan(context.Background(), "do the thing", "")
	require.NoError(t, err)
	require.Len(t, plan.Sorties, 1)
	assert.Equal(t, StrategyFeature, plan.Strategy)
}

func TestValidate(t *testing.T) {
	assert.Equal(t, faults.KindValidation, faults.KindOf(Validate(nil)))
	assert.Equal(t, faults.KindValidation, faults.KindOf(Validate(&Plan{})))

	err := Validate(&Plan{Sorties: []PlannedSortie{
		{Key: "a", Title: "a"},
		{Key: "a", Title: "again"},
	}})
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	err = Validate(&Plan{Sorties: []PlannedSortie{
		{Key: "a", Title: "a", DependsOn: []string{"ghost"}},
	}})
	assert.Equal(t, faults.KindValidation, faults.KindOf(err))

	err = Validate(&Plan{Sorties: []PlannedSortie{
		{Key: "a", Title: "a", DependsOn: []string{"b"}},
		{Key: "b", Title: "b", DependsOn: []string{"a"}},
	}})
	assert.ErrorIs(t, err, faults.ErrCyclicDependency)
}

// cyclicPlanner returns a plan Validate must catch, regardless of what the
// planner promised.
type cyclicPlanner struct{}

func (cyclicPlanner) Plan(context.Context, string, string) (*Plan, error) {
	return &Plan{Strategy: "custom", Sorties: []PlannedSortie{
		{Key: "a", Title: "a", DependsOn: []string{"b"}},
		{Key: "b", Title: "b", DependsOn: []string{"a"}},
	}}, nil
}

func setupPlanner(t *testing.T, p Planner) (*Service, *lifecycle.SortieService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	store := eventstore.NewStore(client.Client, projection.NewEngine(client.Client), time.Second)
	missions := lifecycle.NewMissionService(store, client.Client)
	sorties := lifecycle.NewSortieService(store, client.Client)
	return NewService(p, missions, sorties), sorties
}

func TestService_DecomposeDryRunCreatesNothing(t *testing.T) {
	svc, sorties := setupPlanner(t, nil)

	res, err := svc.Decompose(context.Background(), models.DecomposeRequest{
		Task:   "step one; step two",
		DryRun: true,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Plan)
	assert.Len(t, res.Plan.Sorties, 2)
	assert.Nil(t, res.Mission)
	assert.Empty(t, res.Sorties)

	all, err := sorties.List(context.Background(), lifecycle.ListFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestService_DecomposeCreatesMissionWithResolvedDependencies(t *testing.T) {
	svc, sorties := setupPlanner(t, nil)
	ctx := context.Background()

	res, err := svc.Decompose(ctx, models.DecomposeRequest{
		Task:     "design the schema; implement the schema; document the schema",
		Strategy: StrategyFeature,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Mission)
	assert.Equal(t, StrategyFeature, res.Mission.Strategy)
	require.Len(t, res.Sorties, 3)

	// Plan keys resolved to real sortie ids, in chain order.
	assert.Empty(t, res.Sorties[0].Dependencies)
	assert.Equal(t, []string{res.Sorties[0].ID}, res.Sorties[1].Dependencies)
	assert.Equal(t, []string{res.Sorties[1].ID}, res.Sorties[2].Dependencies)

	all, err := sorties.List(ctx, lifecycle.ListFilter{MissionID: res.Mission.ID})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestService_DecomposeRejectsInvalidPlannerOutput(t *testing.T) {
	svc, _ := setupPlanner(t, cyclicPlanner{})

	_, err := svc.Decompose(context.Background(), models.DecomposeRequest{Task: "anything"})
	assert.ErrorIs(t, err, faults.ErrCyclicDependency)
}
