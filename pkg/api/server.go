// Package api exposes the coordination engine over HTTP. Every response is
// wrapped in the `{data, error?, timestamp}` envelope and every error carries
// one of the stable codes from pkg/faults.
package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/checkpoint"
	"github.com/fleettools/fleetd/pkg/config"
	"github.com/fleettools/fleetd/pkg/database"
	"github.com/fleettools/fleetd/pkg/dispatch"
	"github.com/fleettools/fleetd/pkg/eventstore"
	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/mailbox"
	"github.com/fleettools/fleetd/pkg/planner"
)

// Server is the HTTP surface over the coordination services.
type Server struct {
	echo *echo.Echo
	http *http.Server

	cfg         *config.Config
	db          *database.Client
	store       *eventstore.Store
	missions    *lifecycle.MissionService
	sorties     *lifecycle.SortieService
	specialists *dispatch.SpecialistService
	scheduler   *dispatch.Scheduler
	locks       *locks.Service
	mail        *mailbox.Service
	checkpoints *checkpoint.Service
	planner     *planner.Service
}

// NewServer wires the services into an echo instance with all routes
// registered.
func NewServer(
	cfg *config.Config,
	db *database.Client,
	store *eventstore.Store,
	missions *lifecycle.MissionService,
	sorties *lifecycle.SortieService,
	specialists *dispatch.SpecialistService,
	scheduler *dispatch.Scheduler,
	lockSvc *locks.Service,
	mail *mailbox.Service,
	checkpoints *checkpoint.Service,
	plannerSvc *planner.Service,
) *Server {
	s := &Server{
		cfg:         cfg,
		db:          db,
		store:       store,
		missions:    missions,
		sorties:     sorties,
		specialists: specialists,
		scheduler:   scheduler,
		locks:       lockSvc,
		mail:        mail,
		checkpoints: checkpoints,
		planner:     plannerSvc,
	}

	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.Use(correlationID())
	e.Use(requestLogger())
	e.Use(securityHeaders())
	s.registerRoutes(e)
	s.echo = e
	return s
}

func (s *Server) registerRoutes(e *echo.Echo) {
	e.GET("/health", s.healthHandler)

	v1 := e.Group("/api/v1")
	v1.GET("/status", s.statusHandler)
	v1.POST("/decompose", s.decomposeHandler)

	missions := v1.Group("/missions")
	missions.POST("", s.createMissionHandler)
	missions.GET("", s.listMissionsHandler)
	missions.GET("/:id", s.getMissionHandler)
	missions.GET("/:id/stats", s.missionStatsHandler)
	missions.POST("/:id/start", s.startMissionHandler)
	missions.POST("/:id/complete", s.completeMissionHandler)
	missions.POST("/:id/cancel", s.cancelMissionHandler)

	sorties := v1.Group("/sorties")
	sorties.POST("", s.createSortieHandler)
	sorties.GET("", s.listSortiesHandler)
	sorties.GET("/:id", s.getSortieHandler)
	sorties.POST("/:id/assign", s.assignSortieHandler)
	sorties.POST("/:id/start", s.startSortieHandler)
	sorties.POST("/:id/progress", s.progressSortieHandler)
	sorties.POST("/:id/block", s.blockSortieHandler)
	sorties.POST("/:id/unblock", s.unblockSortieHandler)
	sorties.POST("/:id/complete", s.completeSortieHandler)
	sorties.POST("/:id/fail", s.failSortieHandler)
	sorties.POST("/:id/cancel", s.cancelSortieHandler)
	sorties.POST("/:id/review/approve", s.approveSortieHandler)
	sorties.POST("/:id/review/reject", s.rejectSortieHandler)
	sorties.POST("/:id/restore", s.restoreSortieHandler)

	specialists := v1.Group("/specialists")
	specialists.POST("", s.registerSpecialistHandler)
	specialists.GET("", s.listSpecialistsHandler)
	specialists.GET("/:id", s.getSpecialistHandler)
	specialists.POST("/:id/heartbeat", s.heartbeatHandler)
	specialists.DELETE("/:id", s.deregisterSpecialistHandler)

	mailboxes := v1.Group("/mailboxes")
	mailboxes.POST("/:id/messages", s.sendMessagesHandler)
	mailboxes.GET("/:id/messages", s.readMessagesHandler)
	mailboxes.POST("/:id/threads", s.createThreadHandler)
	v1.POST("/messages/:id/read", s.markReadHandler)
	v1.POST("/messages/:id/ack", s.ackMessageHandler)

	cursors := v1.Group("/cursors")
	cursors.POST("/advance", s.advanceCursorHandler)
	cursors.GET("", s.getCursorHandler)

	lockGroup := v1.Group("/locks")
	lockGroup.POST("", s.acquireLockHandler)
	lockGroup.GET("", s.listLocksHandler)
	lockGroup.GET("/:id", s.getLockHandler)
	lockGroup.POST("/:id/release", s.releaseLockHandler)
	lockGroup.POST("/:id/force-release", s.forceReleaseLockHandler)
	lockGroup.POST("/:id/extend", s.extendLockHandler)
	lockGroup.POST("/reacquire", s.reacquireLocksHandler)

	events := v1.Group("/events")
	events.POST("", s.appendEventHandler)
	events.GET("", s.eventsAfterHandler)
	events.GET("/:id", s.getEventHandler)
	events.GET("/stream/:type/:id", s.eventStreamHandler)
	events.GET("/correlation/:id", s.eventCorrelationHandler)

	checkpoints := v1.Group("/checkpoints")
	checkpoints.POST("", s.createCheckpointHandler)
	checkpoints.GET("", s.listCheckpointsHandler)
	checkpoints.GET("/:id", s.getCheckpointHandler)
	checkpoints.POST("/:id/recover", s.recoverHandler)
	checkpoints.DELETE("/:id", s.deleteCheckpointHandler)
	checkpoints.POST("/prune", s.pruneCheckpointsHandler)
}

// Start begins serving on addr and blocks until Shutdown.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
