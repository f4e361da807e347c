package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fleettools/fleetd/ent"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/sortie"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/faults"
	"github.com/fleettools/fleetd/pkg/ids"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/mailbox"
)

// maxReassignments before a blocked sortie is failed and its dependents
// cancelled.
const maxReassignments = 3

// Checkpointer lets the scheduler request milestone checkpoints without
// depending on the checkpoint package.
type Checkpointer interface {
	// MaybeMilestone checkpoints the mission if progress crossed a
	// configured threshold between before and after (percent).
	MaybeMilestone(ctx context.Context, missionID string, before, after int) error
}

// Scheduler drives the dependency DAG: ready-set spawning, completion
// propagation, review gating and blocker escalation.
type Scheduler struct {
	store       *eventstore.Store
	client      *ent.Client
	missions    *lifecycle.MissionService
	sorties     *lifecycle.SortieService
	locks       *locks.Service
	mail        *mailbox.Service
	specialists *SpecialistService
	checkpoints Checkpointer
	cfg         *config.DispatchConfig

	waiters waitlist

	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates the dispatch scheduler. checkpoints may be nil, in
// which case milestone checkpoints are skipped.
func NewScheduler(
	store *eventstore.Store,
	client *ent.Client,
	missions *lifecycle.MissionService,
	sorties *lifecycle.SortieService,
	lockService *locks.Service,
	mail *mailbox.Service,
	specialists *SpecialistService,
	checkpoints Checkpointer,
	cfg *config.DispatchConfig,
) *Scheduler {
	return &Scheduler{
		store:       store,
		client:      client,
		missions:    missions,
		sorties:     sorties,
		locks:       lockService,
		mail:        mail,
		specialists: specialists,
		checkpoints: checkpoints,
		cfg:         cfg,
	}
}

// ValidatePlan topologically checks the mission's dependency graph and
// rejects cyclic inputs.
func (d *Scheduler) ValidatePlan(ctx context.Context, missionID string) error {
	sorties, err := d.sorties.List(ctx, lifecycle.ListFilter{MissionID: missionID})
	if err != nil {
		return err
	}
	graph := make(map[string][]string, len(sorties))
	for _, st := range sorties {
		graph[st.ID] = st.Dependencies
	}
	if lifecycle.HasCycle(graph) {
		return faults.ErrCyclicDependency
	}
	return nil
}

// StartMission validates the plan, starts the mission and runs the first
// scheduling tick.
func (d *Scheduler) StartMission(ctx context.Context, missionID string) (*ent.Mission, error) {
	if err := d.ValidatePlan(ctx, missionID); err != nil {
		return nil, err
	}
	m, err := d.missions.Start(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if err := d.Tick(ctx, missionID); err != nil {
		return nil, err
	}
	return m, nil
}

// Tick computes the ready set and spawns one specialist per ready sortie.
// Independent ready sorties are spawned concurrently within the tick.
func (d *Scheduler) Tick(ctx context.Context, missionID string) error {
	ready, err := d.readySet(ctx, missionID)
	if err != nil {
		return err
	}
	if len(ready) == 0 {
		return d.maybeCompleteMission(ctx, missionID)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, st := range ready {
		g.Go(func() error {
			return d.spawnFor(gctx, missionID, st)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Scheduler tick spawned specialists",
		"mission_id", missionID,
		"count", len(ready))
	return nil
}

// readySet returns pending sorties whose dependencies have all completed,
// in stable priority-then-creation order.
func (d *Scheduler) readySet(ctx context.Context, missionID string) ([]*ent.Sortie, error) {
	all, err := d.sorties.List(ctx, lifecycle.ListFilter{MissionID: missionID})
	if err != nil {
		return nil, err
	}
	status := make(map[string]sortie.Status, len(all))
	for _, st := range all {
		status[st.ID] = st.Status
	}

	var ready []*ent.Sortie
	for _, st := range all {
		if st.Status != sortie.StatusPending {
			continue
		}
		ok := true
		for _, dep := range st.Dependencies {
			if status[dep] != sortie.StatusCompleted {
				ok = false
				break
			}
		}
		if ok {
			ready = append(ready, st)
		}
	}
	sort.SliceStable(ready, func(i, j int) bool {
		return priorityRank(ready[i].Priority) > priorityRank(ready[j].Priority)
	})
	return ready, nil
}

func priorityRank(p sortie.Priority) int {
	switch p {
	case sortie.PriorityUrgent:
		return 3
	case sortie.PriorityHigh:
		return 2
	case sortie.PriorityNormal:
		return 1
	default:
		return 0
	}
}

// spawnFor emits specialist_spawned and assigns the sortie to the new
// specialist, chained by causation.
func (d *Scheduler) spawnFor(ctx context.Context, missionID string, st *ent.Sortie) error {
	specialistID := ids.NewSpecialist()
	spawn, err := d.store.Append(ctx, eventstore.Envelope{
		EventType:  eventstore.TypeSpecialistSpawned,
		StreamType: eventstore.StreamSpecialist,
		StreamID:   specialistID,
		Payload: &eventstore.SpecialistSpawned{
			SpecialistID: specialistID,
			SortieID:     st.ID,
			MissionID:    missionID,
		},
	})
	if err != nil {
		return err
	}

	_, err = d.store.Append(ctx, eventstore.Envelope{
		EventType:   eventstore.TypeSortieAssigned,
		StreamType:  eventstore.StreamSortie,
		StreamID:    st.ID,
		CausationID: spawn.ID,
		Payload:     &eventstore.SortieAssigned{SortieID: st.ID, SpecialistID: specialistID},
	})
	return err
}

// OnSortieCompleted is completion propagation: review gating, a scheduling
// tick, mission progress recomputation and a milestone checkpoint when a
// threshold is crossed.
func (d *Scheduler) OnSortieCompleted(ctx context.Context, sortieID string) error {
	st, err := d.sorties.Get(ctx, sortieID)
	if err != nil {
		return err
	}
	if st.MissionID == nil || *st.MissionID == "" {
		return d.reviewCompleted(ctx, st)
	}
	missionID := *st.MissionID

	before, err := d.missionProgress(ctx, missionID)
	if err != nil {
		return err
	}

	if err := d.reviewCompleted(ctx, st); err != nil {
		return err
	}
	d.resolveWaiters(ctx, sortieID)
	if err := d.Tick(ctx, missionID); err != nil {
		return err
	}

	after, err := d.missionProgress(ctx, missionID)
	if err != nil {
		return err
	}
	if d.checkpoints != nil {
		if err := d.checkpoints.MaybeMilestone(ctx, missionID, before, after); err != nil {
			slog.Error("Milestone checkpoint failed", "mission_id", missionID, "error", err)
		}
	}
	return nil
}

func (d *Scheduler) missionProgress(ctx context.Context, missionID string) (int, error) {
	m, err := d.missions.Get(ctx, missionID)
	if err != nil {
		return 0, err
	}
	return lifecycle.ProgressPercent(m.TotalSorties, m.CompletedSorties), nil
}

// maybeCompleteMission completes the mission once every child is terminal.
func (d *Scheduler) maybeCompleteMission(ctx context.Context, missionID string) error {
	m, err := d.missions.Get(ctx, missionID)
	if err != nil {
		return err
	}
	if m.Status != mission.StatusInProgress {
		return nil
	}
	open, err := d.client.Sortie.Query().
		Where(
			sortie.MissionID(missionID),
			sortie.StatusNotIn(sortie.StatusCompleted, sortie.StatusCancelled),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count open sorties: %w", err)
	}
	if open > 0 {
		return nil
	}
	_, err = d.missions.Complete(ctx, missionID)
	return err
}

// Loop control.

// Start launches the periodic scheduler loop: blocker escalation, stale
// specialist sweep, and a safety tick over in-progress missions.
func (d *Scheduler) Start(ctx context.Context) {
	if d.cancel != nil {
		return
	}
	ctx, d.cancel = context.WithCancel(ctx)
	d.done = make(chan struct{})

	go d.run(ctx)

	slog.Info("Dispatch scheduler started",
		"tick_interval", d.cfg.TickInterval,
		"blocker_timeout", d.cfg.BlockerTimeout)
}

// Stop signals the loop to exit and waits for it to finish.
func (d *Scheduler) Stop() {
	if d.cancel == nil {
		return
	}
	d.cancel()
	<-d.done
	slog.Info("Dispatch scheduler stopped")
}

func (d *Scheduler) run(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(d.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.runOnce(ctx)
		}
	}
}

func (d *Scheduler) runOnce(ctx context.Context) {
	if _, err := d.specialists.SweepStale(ctx); err != nil {
		slog.Error("Stale specialist sweep failed", "error", err)
	}
	if err := d.EscalateBlockers(ctx); err != nil {
		slog.Error("Blocker escalation failed", "error", err)
	}

	active, err := d.missions.List(ctx, string(mission.StatusInProgress), 0)
	if err != nil {
		slog.Error("Failed to list active missions", "error", err)
		return
	}
	for _, m := range active {
		if err := d.Tick(ctx, m.ID); err != nil {
			slog.Error("Scheduler tick failed", "mission_id", m.ID, "error", err)
		}
	}
}
