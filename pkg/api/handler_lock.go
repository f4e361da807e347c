package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/locks"
	"github.com/fleettools/fleetd/pkg/models"
)

// acquireLockHandler handles POST /api/v1/locks.
func (s *Server) acquireLockHandler(c *echo.Context) error {
	var req models.AcquireLockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lock, err := s.locks.Acquire(c.Request().Context(), locks.AcquireRequest{
		File:         req.File,
		SpecialistID: req.SpecialistID,
		Timeout:      time.Duration(req.TimeoutMS) * time.Millisecond,
		Purpose:      req.Purpose,
		Checksum:     req.Checksum,
	})
	if err != nil {
		return err
	}
	return created(c, lock)
}

// listLocksHandler handles GET /api/v1/locks.
func (s *Server) listLocksHandler(c *echo.Context) error {
	list, err := s.locks.ListActive(c.Request().Context(), c.QueryParam("reserved_by"))
	if err != nil {
		return err
	}
	return ok(c, list)
}

// getLockHandler handles GET /api/v1/locks/:id.
func (s *Server) getLockHandler(c *echo.Context) error {
	lockID := c.Param("id")
	if lockID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lock id is required")
	}

	lock, err := s.locks.Get(c.Request().Context(), lockID)
	if err != nil {
		return err
	}
	return ok(c, lock)
}

// releaseLockHandler handles POST /api/v1/locks/:id/release.
func (s *Server) releaseLockHandler(c *echo.Context) error {
	lockID := c.Param("id")
	var body struct {
		SpecialistID string `json:"specialist_id"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.SpecialistID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "specialist_id is required")
	}

	lock, err := s.locks.Release(c.Request().Context(), lockID, body.SpecialistID)
	if err != nil {
		return err
	}
	return ok(c, lock)
}

// forceReleaseLockHandler handles POST /api/v1/locks/:id/force-release.
func (s *Server) forceReleaseLockHandler(c *echo.Context) error {
	lockID := c.Param("id")
	var body struct {
		Reason string `json:"reason"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.Reason == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reason is required")
	}

	lock, err := s.locks.ForceRelease(c.Request().Context(), lockID, body.Reason)
	if err != nil {
		return err
	}
	return ok(c, lock)
}

// extendLockHandler handles POST /api/v1/locks/:id/extend.
func (s *Server) extendLockHandler(c *echo.Context) error {
	lockID := c.Param("id")
	var body struct {
		SpecialistID string `json:"specialist_id"`
		AdditionalMS int64  `json:"additional_ms"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.AdditionalMS <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "additional_ms must be positive")
	}

	lock, err := s.locks.Extend(c.Request().Context(), lockID, body.SpecialistID,
		time.Duration(body.AdditionalMS)*time.Millisecond)
	if err != nil {
		return err
	}
	return ok(c, lock)
}

// reacquireLocksHandler handles POST /api/v1/locks/reacquire, the standalone
// re-acquisition surface used when restoring from an externally held
// checkpoint document.
func (s *Server) reacquireLocksHandler(c *echo.Context) error {
	var body struct {
		Locks []locks.Snapshot `json:"locks"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(body.Locks) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "locks are required")
	}

	results, err := s.locks.Reacquire(c.Request().Context(), body.Locks)
	if err != nil {
		return err
	}
	return ok(c, results)
}
