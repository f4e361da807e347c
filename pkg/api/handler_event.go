package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/eventstore"
)

// AppendEventRequest is the body of POST /api/v1/events.
type AppendEventRequest struct {
	EventID     string         `json:"event_id,omitempty"`
	EventType   string         `json:"event_type"`
	StreamType  string         `json:"stream_type"`
	StreamID    string         `json:"stream_id"`
	Payload     map[string]any `json:"payload"`
	CausationID string         `json:"causation_id,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	OccurredAt  *time.Time     `json:"occurred_at,omitempty"`
}

// appendEventHandler handles POST /api/v1/events.
func (s *Server) appendEventHandler(c *echo.Context) error {
	var req AppendEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	payload, err := eventstore.NewPayload(req.EventType, req.Payload)
	if err != nil {
		return err
	}

	env := eventstore.Envelope{
		EventID:     req.EventID,
		EventType:   req.EventType,
		StreamType:  req.StreamType,
		StreamID:    req.StreamID,
		Payload:     payload,
		CausationID: req.CausationID,
		Metadata:    req.Metadata,
	}
	if req.OccurredAt != nil {
		env.OccurredAt = *req.OccurredAt
	}

	evt, err := s.store.Append(c.Request().Context(), env)
	if err != nil {
		return err
	}
	return created(c, evt)
}

// getEventHandler handles GET /api/v1/events/:id.
func (s *Server) getEventHandler(c *echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event id is required")
	}

	evt, err := s.store.GetByID(c.Request().Context(), eventID)
	if err != nil {
		return err
	}
	return ok(c, evt)
}

// eventStreamHandler handles GET /api/v1/events/stream/:type/:id.
func (s *Server) eventStreamHandler(c *echo.Context) error {
	streamType := c.Param("type")
	streamID := c.Param("id")
	if streamType == "" || streamID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "stream type and id are required")
	}

	after, limit, err := seqWindow(c)
	if err != nil {
		return err
	}

	events, err := s.store.GetStream(c.Request().Context(), streamType, streamID, after, limit)
	if err != nil {
		return err
	}
	return ok(c, events)
}

// eventCorrelationHandler handles GET /api/v1/events/correlation/:id.
func (s *Server) eventCorrelationHandler(c *echo.Context) error {
	correlationID := c.Param("id")
	if correlationID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "correlation id is required")
	}

	events, err := s.store.GetByCorrelation(c.Request().Context(), correlationID)
	if err != nil {
		return err
	}
	return ok(c, events)
}

// eventsAfterHandler handles GET /api/v1/events — the global log tail.
func (s *Server) eventsAfterHandler(c *echo.Context) error {
	after, limit, err := seqWindow(c)
	if err != nil {
		return err
	}
	if limit == 0 {
		limit = 100
	}

	events, err := s.store.GetAfter(c.Request().Context(), after, limit)
	if err != nil {
		return err
	}
	return ok(c, events)
}

// seqWindow parses the after/limit query parameters shared by the event
// listing endpoints.
func seqWindow(c *echo.Context) (int64, int, error) {
	var after int64
	if v := c.QueryParam("after"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid after: must be a non-negative sequence")
		}
		after = n
	}
	var limit int
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 1000 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-1000")
		}
		limit = n
	}
	return after, limit, nil
}
