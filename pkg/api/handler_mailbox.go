package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/mailbox"
	"github.com/fleettools/fleetd/pkg/models"
)

// sendMessagesHandler handles POST /api/v1/mailboxes/:id/messages.
func (s *Server) sendMessagesHandler(c *echo.Context) error {
	mailboxID := c.Param("id")
	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Messages) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "messages are required")
	}

	outgoing := make([]mailbox.Outgoing, 0, len(req.Messages))
	for _, m := range req.Messages {
		outgoing = append(outgoing, mailbox.Outgoing{
			SenderID: m.SenderID,
			ThreadID: m.ThreadID,
			Type:     m.Type,
			Content:  m.Content,
			Priority: m.Priority,
		})
	}

	n, err := s.mail.Append(c.Request().Context(), mailboxID, outgoing)
	if err != nil {
		return err
	}
	return created(c, map[string]int{"delivered": n})
}

// readMessagesHandler handles GET /api/v1/mailboxes/:id/messages.
func (s *Server) readMessagesHandler(c *echo.Context) error {
	mailboxID := c.Param("id")

	var after int64
	if v := c.QueryParam("after"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid after: must be a non-negative sequence")
		}
		after = n
	}
	limit := 100
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 500 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-500")
		}
		limit = n
	}

	msgs, err := s.mail.Read(c.Request().Context(), mailboxID, after, limit)
	if err != nil {
		return err
	}
	return ok(c, msgs)
}

// createThreadHandler handles POST /api/v1/mailboxes/:id/threads.
func (s *Server) createThreadHandler(c *echo.Context) error {
	mailboxID := c.Param("id")
	var body struct {
		Subject string `json:"subject"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	threadID, err := s.mail.CreateThread(c.Request().Context(), mailboxID, body.Subject)
	if err != nil {
		return err
	}
	return created(c, map[string]string{"thread_id": threadID})
}

// markReadHandler handles POST /api/v1/messages/:id/read.
func (s *Server) markReadHandler(c *echo.Context) error {
	messageID := c.Param("id")
	var body struct {
		ReaderID string `json:"reader_id"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := s.mail.MarkRead(c.Request().Context(), messageID, body.ReaderID)
	if err != nil {
		return err
	}
	return ok(c, msg)
}

// ackMessageHandler handles POST /api/v1/messages/:id/ack.
func (s *Server) ackMessageHandler(c *echo.Context) error {
	messageID := c.Param("id")
	var body struct {
		AckerID  string         `json:"acker_id"`
		Response map[string]any `json:"response,omitempty"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	msg, err := s.mail.Ack(c.Request().Context(), messageID, body.AckerID, body.Response)
	if err != nil {
		return err
	}
	return ok(c, msg)
}

// advanceCursorHandler handles POST /api/v1/cursors/advance.
func (s *Server) advanceCursorHandler(c *echo.Context) error {
	var req models.AdvanceCursorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cur, err := s.mail.Advance(c.Request().Context(),
		req.StreamType, req.StreamID, req.ConsumerID, req.Position)
	if err != nil {
		return err
	}
	return ok(c, cur)
}

// getCursorHandler handles GET /api/v1/cursors.
func (s *Server) getCursorHandler(c *echo.Context) error {
	streamType := c.QueryParam("stream_type")
	streamID := c.QueryParam("stream_id")
	consumerID := c.QueryParam("consumer_id")
	if streamType == "" || streamID == "" || consumerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest,
			"stream_type, stream_id and consumer_id are required")
	}

	cur, err := s.mail.GetCursor(c.Request().Context(), streamType, streamID, consumerID)
	if err != nil {
		return err
	}
	return ok(c, cur)
}
