package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/eventstore"
)

// CreateCheckpointRequest is the body of POST /api/v1/checkpoints.
type CreateCheckpointRequest struct {
	MissionID string `json:"mission_id"`
	Trigger   string `json:"trigger,omitempty"`
	Note      string `json:"note,omitempty"`
	CreatedBy string `json:"created_by,omitempty"`
}

// createCheckpointHandler handles POST /api/v1/checkpoints.
func (s *Server) createCheckpointHandler(c *echo.Context) error {
	var req CreateCheckpointRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.MissionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "mission_id is required")
	}
	if req.Trigger == "" {
		req.Trigger = eventstore.TriggerManual
	}

	row, err := s.checkpoints.Create(c.Request().Context(),
		req.MissionID, req.Trigger, req.Note, req.CreatedBy)
	if err != nil {
		return err
	}
	return created(c, row)
}

// listCheckpointsHandler handles GET /api/v1/checkpoints.
func (s *Server) listCheckpointsHandler(c *echo.Context) error {
	rows, err := s.checkpoints.List(c.Request().Context(), c.QueryParam("mission_id"))
	if err != nil {
		return err
	}
	return ok(c, rows)
}

// getCheckpointHandler handles GET /api/v1/checkpoints/:id.
func (s *Server) getCheckpointHandler(c *echo.Context) error {
	checkpointID := c.Param("id")
	if checkpointID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "checkpoint id is required")
	}

	doc, err := s.checkpoints.Get(c.Request().Context(), checkpointID)
	if err != nil {
		return err
	}
	return ok(c, doc)
}

// recoverHandler handles POST /api/v1/checkpoints/:id/recover.
func (s *Server) recoverHandler(c *echo.Context) error {
	checkpointID := c.Param("id")
	if checkpointID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "checkpoint id is required")
	}
	dryRun := c.QueryParam("dry_run") == "true"

	report, err := s.checkpoints.Recover(c.Request().Context(), checkpointID, dryRun)
	if err != nil {
		return err
	}
	return ok(c, report)
}

// deleteCheckpointHandler handles DELETE /api/v1/checkpoints/:id.
func (s *Server) deleteCheckpointHandler(c *echo.Context) error {
	checkpointID := c.Param("id")
	if checkpointID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "checkpoint id is required")
	}
	reason := c.QueryParam("reason")
	if reason == "" {
		reason = "deleted via api"
	}

	if err := s.checkpoints.Delete(c.Request().Context(), checkpointID, reason); err != nil {
		return err
	}
	return ok(c, map[string]string{"checkpoint_id": checkpointID, "status": "deleted"})
}

// pruneCheckpointsHandler handles POST /api/v1/checkpoints/prune.
func (s *Server) pruneCheckpointsHandler(c *echo.Context) error {
	deleted, err := s.checkpoints.Prune(c.Request().Context())
	if err != nil {
		return err
	}
	return ok(c, map[string]int{"deleted": deleted})
}
