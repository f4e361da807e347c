package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/ent/filelock"
	"github.com/fleettools/fleetd/ent/message"
	"github.com/fleettools/fleetd/ent/mission"
	"github.com/fleettools/fleetd/ent/specialist"
	"github.com/fleettools/fleetd/pkg/database"
	"github.com/fleettools/fleetd/pkg/version"
)

// healthHandler handles GET /health: store reachability, journal mode, and
// the current log position.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	resp := &HealthResponse{
		Status:  "healthy",
		Version: version.Full(),
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		resp.Status = "unhealthy"
		resp.Error = err.Error()
		return respond(c, http.StatusServiceUnavailable, resp)
	}
	resp.JournalMode = dbHealth.JournalMode

	if seq, err := s.store.LastSequence(ctx); err == nil {
		resp.LastSequence = seq
	}
	if n, err := s.db.Mission.Query().
		Where(mission.StatusEQ(mission.StatusInProgress)).
		Count(ctx); err == nil {
		resp.ActiveMissions = n
	}

	return ok(c, resp)
}

// statusHandler handles GET /api/v1/status, the coordinator overview.
func (s *Server) statusHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	resp := &StatusResponse{
		Missions: map[string]int{},
		Sorties:  map[string]int{},
	}

	missions, err := s.db.Mission.Query().All(ctx)
	if err != nil {
		return err
	}
	for _, m := range missions {
		resp.Missions[string(m.Status)]++
	}

	sorties, err := s.db.Sortie.Query().All(ctx)
	if err != nil {
		return err
	}
	for _, st := range sorties {
		resp.Sorties[string(st.Status)]++
	}

	if n, err := s.db.Specialist.Query().
		Where(specialist.StatusNotIn(
			specialist.StatusCompleted, specialist.StatusFailed, specialist.StatusStale)).
		Count(ctx); err == nil {
		resp.ActiveSpecialists = n
	}
	if n, err := s.db.FileLock.Query().
		Where(filelock.StatusEQ(filelock.StatusActive)).
		Count(ctx); err == nil {
		resp.ActiveLocks = n
	}
	if n, err := s.db.Message.Query().
		Where(message.StatusEQ(message.StatusPending)).
		Count(ctx); err == nil {
		resp.PendingMessages = n
	}
	if seq, err := s.store.LastSequence(ctx); err == nil {
		resp.LastSequence = seq
	}

	return ok(c, resp)
}
