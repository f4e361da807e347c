// Package planner is the decomposition boundary: a Planner turns a task
// description into a sortie DAG. The engine treats the planner as opaque and
// only requires the produced plan to be acyclic; the built-in planner is a
// deterministic heuristic, with richer planners plugged in behind the same
// interface.
package planner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/lifecycle"
)

// Decomposition strategies.
const (
	StrategyFile    = "file"
	StrategyFeature = "feature"
	StrategyRisk    = "risk"
)

// PlannedSortie is one node of a produced plan. DependsOn references other
// nodes by Key.
type PlannedSortie struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Files       []string `json:"files,omitempty"`
	DependsOn   []string `json:"depends_on,omitempty"`
}

// Plan is a validated sortie DAG for one task.
type Plan struct {
	Strategy string          `json:"strategy"`
	Sorties  []PlannedSortie `json:"sorties"`
}

// Planner produces a sortie DAG for a task. Implementations must return an
// acyclic plan; Validate is still applied to whatever comes back.
type Planner interface {
	Plan(ctx context.Context, task, strategy string) (*Plan, error)
}

// Validate rejects plans that are empty, reference unknown dependency keys,
// or contain a dependency cycle.
func Validate(plan *Plan) error {
	if plan == nil || len(plan.Sorties) == 0 {
		return faults.New(faults.KindValidation, "plan contains no sorties")
	}

	keys := make(map[string]bool, len(plan.Sorties))
	for _, s := range plan.Sorties {
		if s.Key == "" {
			return faults.New(faults.KindValidation, "planned sortie is missing a key")
		}
		if s.Title == "" {
			return faults.Newf(faults.KindValidation, "planned sortie %s is missing a title", s.Key)
		}
		if keys[s.Key] {
			return faults.Newf(faults.KindValidation, "duplicate plan key %s", s.Key)
		}
		keys[s.Key] = true
	}

	graph := make(map[string][]string, len(plan.Sorties))
	for _, s := range plan.Sorties {
		for _, dep := range s.DependsOn {
			if !keys[dep] {
				return faults.Newf(faults.KindValidation,
					"planned sortie %s depends on unknown key %s", s.Key, dep)
			}
		}
		graph[s.Key] = s.DependsOn
	}
	if lifecycle.HasCycle(graph) {
		return faults.ErrCyclicDependency
	}
	return nil
}

// Heuristic is the built-in deterministic planner. It splits the task text
// into steps and shapes the dependency edges per strategy:
//
//   - file: steps run in parallel, sequenced only where they name the same file
//   - feature: a sequential chain, each step depending on the previous
//   - risk: a scoping spike first, every other step depending on it
type Heuristic struct{}

// Plan implements Planner.
func (Heuristic) Plan(_ context.Context, task, strategy string) (*Plan, error) {
	if strings.TrimSpace(task) == "" {
		return nil, faults.New(faults.KindValidation, "task description is required")
	}
	if strategy == "" {
		strategy = StrategyFeature
	}

	steps := splitSteps(task)
	plan := &Plan{Strategy: strategy}
	switch strategy {
	case StrategyFile:
		plan.Sorties = planByFile(steps)
	case StrategyFeature:
		plan.Sorties = planByFeature(steps)
	case StrategyRisk:
		plan.Sorties = planByRisk(task, steps)
	default:
		return nil, faults.Newf(faults.KindValidation, "unknown strategy: %s", strategy)
	}

	if err := Validate(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// splitSteps breaks a task description into step titles on newlines and
// semicolons, falling back to the whole task as a single step.
func splitSteps(task string) []string {
	raw := strings.FieldsFunc(task, func(r rune) bool {
		return r == '\n' || r == ';'
	})
	var steps []string
	for _, s := range raw {
		s = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "-*0123456789. "))
		if s != "" {
			steps = append(steps, s)
		}
	}
	if len(steps) == 0 {
		steps = []string{strings.TrimSpace(task)}
	}
	return steps
}

func planByFeature(steps []string) []PlannedSortie {
	sorties := make([]PlannedSortie, 0, len(steps))
	for i, step := range steps {
		s := PlannedSortie{
			Key:   fmt.Sprintf("s%d", i+1),
			Title: step,
			Files: mentionedFiles(step),
		}
		if i > 0 {
			s.DependsOn = []string{fmt.Sprintf("s%d", i)}
		}
		sorties = append(sorties, s)
	}
	return sorties
}

func planByFile(steps []string) []PlannedSortie {
	sorties := make([]PlannedSortie, 0, len(steps))
	// Sequence steps that touch a file someone earlier already touches;
	// everything else runs in parallel.
	lastTouch := map[string]string{}
	for i, step := range steps {
		s := PlannedSortie{
			Key:   fmt.Sprintf("s%d", i+1),
			Title: step,
			Files: mentionedFiles(step),
		}
		depSet := map[string]bool{}
		for _, f := range s.Files {
			if prev, ok := lastTouch[f]; ok {
				depSet[prev] = true
			}
			lastTouch[f] = s.Key
		}
		for dep := range depSet {
			s.DependsOn = append(s.DependsOn, dep)
		}
		sort.Strings(s.DependsOn)
		sorties = append(sorties, s)
	}
	return sorties
}

func planByRisk(task string, steps []string) []PlannedSortie {
	sorties := []PlannedSortie{{
		Key:         "s1",
		Title:       "Scope and de-risk: " + firstLine(task),
		Description: "Investigate the riskiest parts of the task before implementation begins.",
		Priority:    "high",
	}}
	for i, step := range steps {
		sorties = append(sorties, PlannedSortie{
			Key:       fmt.Sprintf("s%d", i+2),
			Title:     step,
			Files:     mentionedFiles(step),
			DependsOn: []string{"s1"},
		})
	}
	return sorties
}

// mentionedFiles pulls path-looking tokens out of a step title so sorties
// declare the files they expect to touch.
func mentionedFiles(step string) []string {
	var files []string
	for _, tok := range strings.Fields(step) {
		tok = strings.Trim(tok, "`'\",:()")
		if strings.ContainsRune(tok, '/') || hasSourceSuffix(tok) {
			files = append(files, tok)
		}
	}
	return files
}

func hasSourceSuffix(tok string) bool {
	for _, suffix := range []string{".go", ".py", ".ts", ".js", ".sql", ".yaml", ".yml", ".json", ".md"} {
		if strings.HasSuffix(tok, suffix) && len(tok) > len(suffix) {
			return true
		}
	}
	return false
}

func firstLine(task string) string {
	if i := strings.IndexByte(task, '\n'); i >= 0 {
		task = task[:i]
	}
	task = strings.TrimSpace(task)
	if len(task) > 80 {
		task = task[:80]
	}
	return task
}
