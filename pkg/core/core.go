// Package core wires the coordination engine: config → store → projections →
// services → background loops. fleetd and fleetctl both construct a Core so
// the daemon and the CLI operate on identical plumbing.
package core

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fleettools/fleetd/pkg/checkpoint"
	"github.com/fleettools/fleetd/pkg/compaction"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/database"
	"github.com/fleettools/fleetd/pkg/dispatch"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/mailbox"
	"github.com/fleettools/fleetd/pkg/planner"
	"github.com/fleettools/fleetd/pkg/projection"
)

// Core is the assembled engine. Background loops are not started by New;
// call StartBackground for the daemon path.
type Core struct {
	Cfg         *config.Config
	DB          *database.Client
	Store       *eventstore.Store
	Engine      *projection.Engine
	Missions    *lifecycle.MissionService
	Sorties     *lifecycle.SortieService
	Specialists *dispatch.SpecialistService
	Scheduler   *dispatch.Scheduler
	Locks       *locks.Service
	Mail        *mailbox.Service
	Checkpoints *checkpoint.Service
	Compactor   *compaction.Service
	Planner     *planner.Service

	sweeper *locks.Sweeper
	started bool
}

// New opens the store and wires every service. The projection engine is
// attached to the store so projections update inside the append transaction.
func New(ctx context.Context, cfg *config.Config) (*Core, error) {
	db, err := database.NewClient(ctx, database.Config{
		Path:        cfg.StorePath(),
		BusyTimeout: cfg.Store.AppendBusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	engine := projection.NewEngine(db.Client)
	store := eventstore.NewStore(db.Client, engine, cfg.Store.AppendBusyTimeout)

	missions := lifecycle.NewMissionService(store, db.Client)
	sorties := lifecycle.NewSortieService(store, db.Client)
	lockSvc := locks.NewService(store, db.Client, &cfg.Locks, cfg.ProjectPath)
	mail := mailbox.NewService(store, db.Client)
	specialists := dispatch.NewSpecialistService(store, db.Client, sorties, &cfg.Liveness)
	checkpoints := checkpoint.NewService(store, db.Client, missions, sorties, lockSvc, mail, cfg)
	scheduler := dispatch.NewScheduler(store, db.Client, missions, sorties, lockSvc, mail,
		specialists, checkpoints, &cfg.Dispatch)
	compactor := compaction.NewService(store, db.Client, cfg, checkpoints)
	plannerSvc := planner.NewService(nil, missions, sorties)

	return &Core{
		Cfg:         cfg,
		DB:          db,
		Store:       store,
		Engine:      engine,
		Missions:    missions,
		Sorties:     sorties,
		Specialists: specialists,
		Scheduler:   scheduler,
		Locks:       lockSvc,
		Mail:        mail,
		Checkpoints: checkpoints,
		Compactor:   compactor,
		Planner:     plannerSvc,
		sweeper:     locks.NewSweeper(lockSvc, cfg.Locks.SweepInterval),
	}, nil
}

// StartBackground launches the lock sweeper, scheduler loop, and compaction
// loop. The CLI skips this and drives operations synchronously.
func (c *Core) StartBackground(ctx context.Context) {
	c.sweeper.Start(ctx)
	c.Scheduler.Start(ctx)
	c.Compactor.Start(ctx)
	c.started = true
}

// DetectInterrupted runs the startup compaction check and reports
// in-progress missions that look abandoned with a resumable checkpoint.
func (c *Core) DetectInterrupted(ctx context.Context) []checkpoint.CompactedMission {
	detected, err := c.Checkpoints.DetectCompacted(ctx)
	if err != nil {
		slog.Error("Startup compaction detection failed", "error", err)
		return nil
	}
	return detected
}

// Close stops background loops and takes a compaction-trigger checkpoint of
// every in-progress mission before closing the store, so a later start can
// resume from a coherent snapshot.
func (c *Core) Close(ctx context.Context) error {
	if c.started {
		c.Compactor.Stop()
		c.Scheduler.Stop()
		c.sweeper.Stop()
	}

	missions, err := c.Missions.List(ctx, "in_progress", 0)
	if err != nil {
		slog.Error("Failed to list missions for shutdown checkpoint", "error", err)
	} else {
		for _, m := range missions {
			if _, err := c.Checkpoints.Create(ctx, m.ID,
				eventstore.TriggerCompaction, "shutdown", "fleetd"); err != nil {
				slog.Error("Shutdown checkpoint failed", "mission_id", m.ID, "error", err)
			}
		}
	}

	return c.DB.Close()
}
