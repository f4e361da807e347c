package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/models"
)

// createMissionHandler handles POST /api/v1/missions.
func (s *Server) createMissionHandler(c *echo.Context) error {
	var req models.CreateMissionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m, err := s.missions.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return created(c, m)
}

// listMissionsHandler handles GET /api/v1/missions.
func (s *Server) listMissionsHandler(c *echo.Context) error {
	limit := 50
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-500")
		}
		limit = n
	}

	missions, err := s.missions.List(c.Request().Context(), c.QueryParam("status"), limit)
	if err != nil {
		return err
	}
	return ok(c, missions)
}

// getMissionHandler handles GET /api/v1/missions/:id.
func (s *Server) getMissionHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	m, err := s.missions.Get(c.Request().Context(), missionID)
	if err != nil {
		return err
	}
	return ok(c, m)
}

// missionStatsHandler handles GET /api/v1/missions/:id/stats.
func (s *Server) missionStatsHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	stats, err := s.missions.Stats(c.Request().Context(), missionID)
	if err != nil {
		return err
	}
	return ok(c, stats)
}

// startMissionHandler handles POST /api/v1/missions/:id/start. Starting goes
// through the scheduler so the dependency DAG is validated and the first
// ready set is spawned in the same call.
func (s *Server) startMissionHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	m, err := s.scheduler.StartMission(c.Request().Context(), missionID)
	if err != nil {
		return err
	}
	return ok(c, m)
}

// completeMissionHandler handles POST /api/v1/missions/:id/complete.
func (s *Server) completeMissionHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	m, err := s.missions.Complete(c.Request().Context(), missionID)
	if err != nil {
		return err
	}
	return ok(c, m)
}

// cancelMissionHandler handles POST /api/v1/missions/:id/cancel.
func (s *Server) cancelMissionHandler(c *echo.Context) error {
	missionID := c.Param("id")
	if missionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission id is required")
	}

	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m, err := s.missions.Cancel(c.Request().Context(), missionID, body.Reason)
	if err != nil {
		return err
	}
	return ok(c, m)
}

// decomposeHandler handles POST /api/v1/decompose.
func (s *Server) decomposeHandler(c *echo.Context) error {
	var req models.DecomposeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Task == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task is required")
	}

	result, err := s.planner.Decompose(c.Request().Context(), req)
	if err != nil {
		return err
	}
	if req.DryRun {
		return ok(c, result)
	}
	return created(c, result)
}
