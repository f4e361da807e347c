package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Data      any            `json:"data,omitempty"`
	Error     *ResponseError `json:"error,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// ResponseError carries the stable error code, a human-readable message, and
// a correlation id for log lookup.
type ResponseError struct {
	Code          string         `json:"code"`
	Message       string         `json:"message"`
	Details       map[string]any `json:"details,omitempty"`
	CorrelationID string         `json:"correlation_id,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status         string `json:"status"`
	Version        string `json:"version"`
	JournalMode    string `json:"journal_mode,omitempty"`
	LastSequence   int64  `json:"last_sequence"`
	ActiveMissions int    `json:"active_missions"`
	Error          string `json:"error,omitempty"`
}

// StatusResponse is returned by GET /api/v1/status.
type StatusResponse struct {
	Missions          map[string]int `json:"missions"`
	Sorties           map[string]int `json:"sorties"`
	ActiveSpecialists int            `json:"active_specialists"`
	ActiveLocks       int            `json:"active_locks"`
	PendingMessages   int            `json:"pending_messages"`
	LastSequence      int64          `json:"last_sequence"`
}

func respond(c *echo.Context, status int, data any) error {
	return c.JSON(status, &Response{
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func ok(c *echo.Context, data any) error {
	return respond(c, http.StatusOK, data)
}

func created(c *echo.Context, data any) error {
	return respond(c, http.StatusCreated, data)
}
