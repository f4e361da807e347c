package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/models"
)

// registerSpecialistHandler handles POST /api/v1/specialists.
func (s *Server) registerSpecialistHandler(c *echo.Context) error {
	var req models.RegisterSpecialistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sp, err := s.specialists.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return created(c, sp)
}

// listSpecialistsHandler handles GET /api/v1/specialists.
func (s *Server) listSpecialistsHandler(c *echo.Context) error {
	list, err := s.specialists.List(c.Request().Context(),
		c.QueryParam("status"), c.QueryParam("mission_id"))
	if err != nil {
		return err
	}
	return ok(c, list)
}

// getSpecialistHandler handles GET /api/v1/specialists/:id.
func (s *Server) getSpecialistHandler(c *echo.Context) error {
	specialistID := c.Param("id")
	if specialistID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "specialist id is required")
	}

	sp, err := s.specialists.Get(c.Request().Context(), specialistID)
	if err != nil {
		return err
	}
	return ok(c, sp)
}

// heartbeatHandler handles POST /api/v1/specialists/:id/heartbeat.
func (s *Server) heartbeatHandler(c *echo.Context) error {
	specialistID := c.Param("id")
	var body struct {
		Status string `json:"status,omitempty"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sp, err := s.specialists.Heartbeat(c.Request().Context(), specialistID, body.Status)
	if err != nil {
		return err
	}
	return ok(c, sp)
}

// deregisterSpecialistHandler handles DELETE /api/v1/specialists/:id.
func (s *Server) deregisterSpecialistHandler(c *echo.Context) error {
	specialistID := c.Param("id")
	if specialistID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "specialist id is required")
	}

	sp, err := s.specialists.Deregister(c.Request().Context(), specialistID, c.QueryParam("reason"))
	if err != nil {
		return err
	}
	return ok(c, sp)
}
