package planner

import (
	"context"
	"log/slog"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/models"
)

// Result is the outcome of a decomposition: the validated plan plus, unless
// it was a dry run, the mission and sorties created from it.
type Result struct {
	Plan    *Plan         `json:"plan"`
	Mission *ent.Mission  `json:"mission,omitempty"`
	Sorties []*ent.Sortie `json:"sorties,omitempty"`
}

// Service materialises plans into missions and sorties.
type Service struct {
	planner  Planner
	missions *lifecycle.MissionService
	sorties  *lifecycle.SortieService
}

// NewService creates a planner service. A nil planner uses the built-in
// heuristic.
func NewService(p Planner, missions *lifecycle.MissionService, sorties *lifecycle.SortieService) *Service {
	if p == nil {
		p = Heuristic{}
	}
	return &Service{planner: p, missions: missions, sorties: sorties}
}

// Decompose plans a task and, unless DryRun is set, creates the mission (when
// no MissionID is given) and its sorties with the planned dependency edges.
func (s *Service) Decompose(ctx context.Context, req models.DecomposeRequest) (*Result, error) {
	plan, err := s.planner.Plan(ctx, req.Task, req.Strategy)
	if err != nil {
		return nil, err
	}
	if err := Validate(plan); err != nil {
		return nil, err
	}
	if req.DryRun {
		return &Result{Plan: plan}, nil
	}

	missionID := req.MissionID
	var m *ent.Mission
	if missionID == "" {
		m, err = s.missions.Create(ctx, models.CreateMissionRequest{
			Title:    firstLine(req.Task),
			Strategy: plan.Strategy,
		})
		if err != nil {
			return nil, err
		}
		missionID = m.ID
	} else {
		m, err = s.missions.Get(ctx, missionID)
		if err != nil {
			return nil, err
		}
	}

	// Create in plan order so dependency keys always resolve to an id.
	idByKey := make(map[string]string, len(plan.Sorties))
	created := make([]*ent.Sortie, 0, len(plan.Sorties))
	for _, ps := range topoOrder(plan.Sorties) {
		deps := make([]string, 0, len(ps.DependsOn))
		for _, key := range ps.DependsOn {
			deps = append(deps, idByKey[key])
		}
		st, err := s.sorties.Create(ctx, models.CreateSortieRequest{
			MissionID:    missionID,
			Title:        ps.Title,
			Description:  ps.Description,
			Priority:     ps.Priority,
			Files:        ps.Files,
			Dependencies: deps,
		})
		if err != nil {
			return nil, err
		}
		idByKey[ps.Key] = st.ID
		created = append(created, st)
	}

	slog.Info("Task decomposed",
		"mission_id", missionID,
		"strategy", plan.Strategy,
		"sorties", len(created))
	return &Result{Plan: plan, Mission: m, Sorties: created}, nil
}

// topoOrder returns the planned sorties in an order where every dependency
// precedes its dependents. Validate has already rejected cycles.
func topoOrder(sorties []PlannedSortie) []PlannedSortie {
	byKey := make(map[string]PlannedSortie, len(sorties))
	for _, s := range sorties {
		byKey[s.Key] = s
	}

	var (
		ordered []PlannedSortie
		placed  = make(map[string]bool, len(sorties))
		visit   func(key string)
	)
	visit = func(key string) {
		if placed[key] {
			return
		}
		placed[key] = true
		for _, dep := range byKey[key].DependsOn {
			visit(dep)
		}
		ordered = append(ordered, byKey[key])
	}
	for _, s := range sorties {
		visit(s.Key)
	}
	return ordered
}
