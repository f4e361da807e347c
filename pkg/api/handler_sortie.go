package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/lifecycle"
	"github.com/fleettools/fleetd/pkg/models"
)

// createSortieHandler handles POST /api/v1/sorties.
func (s *Server) createSortieHandler(c *echo.Context) error {
	var req models.CreateSortieRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return created(c, st)
}

// listSortiesHandler handles GET /api/v1/sorties.
func (s *Server) listSortiesHandler(c *echo.Context) error {
	f := lifecycle.ListFilter{
		MissionID:  c.QueryParam("mission_id"),
		Status:     c.QueryParam("status"),
		AssignedTo: c.QueryParam("assigned_to"),
		Limit:      100,
	}
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-500")
		}
		f.Limit = n
	}

	sorties, err := s.sorties.List(c.Request().Context(), f)
	if err != nil {
		return err
	}
	return ok(c, sorties)
}

// getSortieHandler handles GET /api/v1/sorties/:id.
func (s *Server) getSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	if sortieID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "sortie id is required")
	}

	st, err := s.sorties.Get(c.Request().Context(), sortieID)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// assignSortieHandler handles POST /api/v1/sorties/:id/assign.
func (s *Server) assignSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var body struct {
		SpecialistID string `json:"specialist_id"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.SpecialistID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "specialist_id is required")
	}

	st, err := s.sorties.Assign(c.Request().Context(), sortieID, body.SpecialistID)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// startSortieHandler handles POST /api/v1/sorties/:id/start.
func (s *Server) startSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var body struct {
		SpecialistID string `json:"specialist_id"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.SpecialistID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "specialist_id is required")
	}

	st, err := s.sorties.Start(c.Request().Context(), sortieID, body.SpecialistID)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// progressSortieHandler handles POST /api/v1/sorties/:id/progress.
func (s *Server) progressSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var req models.ProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Progress(c.Request().Context(), sortieID, req)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// blockSortieHandler handles POST /api/v1/sorties/:id/block. The scheduler's
// blocker handling runs inline so dependency and lock blockers that are
// already resolvable clear immediately.
func (s *Server) blockSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var req models.BlockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Block(c.Request().Context(), sortieID, req)
	if err != nil {
		return err
	}
	if err := s.scheduler.HandleBlocked(c.Request().Context(), sortieID); err != nil {
		return err
	}
	return ok(c, st)
}

// unblockSortieHandler handles POST /api/v1/sorties/:id/unblock.
func (s *Server) unblockSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var body struct {
		Resolution string `json:"resolution"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Unblock(c.Request().Context(), sortieID, body.Resolution)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// completeSortieHandler handles POST /api/v1/sorties/:id/complete. Completion
// feeds the scheduler, which runs review gating, spawns newly-ready sorties,
// and takes milestone checkpoints.
func (s *Server) completeSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var req models.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Complete(c.Request().Context(), sortieID, req)
	if err != nil {
		return err
	}
	if err := s.scheduler.OnSortieCompleted(c.Request().Context(), sortieID); err != nil {
		return err
	}
	return ok(c, st)
}

// failSortieHandler handles POST /api/v1/sorties/:id/fail.
func (s *Server) failSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Fail(c.Request().Context(), sortieID, body.Reason)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// cancelSortieHandler handles POST /api/v1/sorties/:id/cancel.
func (s *Server) cancelSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Cancel(c.Request().Context(), sortieID, body.Reason)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// approveSortieHandler handles POST /api/v1/sorties/:id/review/approve.
func (s *Server) approveSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Approve(c.Request().Context(), sortieID, req)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// rejectSortieHandler handles POST /api/v1/sorties/:id/review/reject.
func (s *Server) rejectSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	st, err := s.sorties.Reject(c.Request().Context(), sortieID, req)
	if err != nil {
		return err
	}
	return ok(c, st)
}

// restoreSortieHandler handles POST /api/v1/sorties/:id/restore, used by
// operators to force a sortie back to a known state outside full recovery.
func (s *Server) restoreSortieHandler(c *echo.Context) error {
	sortieID := c.Param("id")
	var snap lifecycle.SortieSnapshot
	if err := c.Bind(&snap); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	snap.SortieID = sortieID

	st, err := s.sorties.Restore(c.Request().Context(), snap, "")
	if err != nil {
		return err
	}
	return ok(c, st)
}
