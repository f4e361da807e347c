package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/fleettools/fleetd/pkg/faults"
)

// statusForKind maps the error taxonomy to HTTP status codes.
func statusForKind(kind faults.Kind) int {
	switch kind {
	case faults.KindValidation:
		return http.StatusBadRequest
	case faults.KindNotFound:
		return http.StatusNotFound
	case faults.KindConflict:
		return http.StatusConflict
	case faults.KindPrecondition:
		return http.StatusPreconditionFailed
	case faults.KindCyclic:
		return http.StatusUnprocessableEntity
	case faults.KindTransient:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// codeForStatus maps plain HTTP errors (bad routes, malformed bodies) onto
// the stable code set.
func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return string(faults.KindNotFound)
	case http.StatusConflict:
		return string(faults.KindConflict)
	case http.StatusPreconditionFailed:
		return string(faults.KindPrecondition)
	case http.StatusServiceUnavailable:
		return string(faults.KindTransient)
	default:
		if status >= http.StatusInternalServerError {
			return string(faults.KindFatal)
		}
		return string(faults.KindValidation)
	}
}

// errorHandler renders every handler error as the standard envelope. Service
// errors keep their stable code and detail object; anything uncategorised is
// logged and reported as INTERNAL_ERROR without leaking internals.
func errorHandler(c *echo.Context, err error) {
	if resp, _ := echo.UnwrapResponse(c.Response()); resp != nil && resp.Committed {
		return
	}

	correlationID := c.Response().Header().Get(echo.HeaderXRequestID)
	respErr := &ResponseError{
		Code:          string(faults.KindFatal),
		Message:       "internal server error",
		CorrelationID: correlationID,
	}
	status := http.StatusInternalServerError

	var svcErr *faults.Error
	var httpErr *echo.HTTPError
	var coder echo.HTTPStatusCoder
	switch {
	case errors.As(err, &svcErr):
		status = statusForKind(svcErr.Kind)
		respErr.Code = string(svcErr.Kind)
		respErr.Message = svcErr.Message
		respErr.Details = svcErr.Detail
	case errors.As(err, &httpErr):
		status = httpErr.Code
		respErr.Code = codeForStatus(status)
		respErr.Message = httpErr.Message
		if respErr.Message == "" {
			respErr.Message = http.StatusText(status)
		}
	case errors.As(err, &coder):
		// Router errors (unknown route, wrong method) carry only a status.
		status = coder.StatusCode()
		respErr.Code = codeForStatus(status)
		respErr.Message = http.StatusText(status)
	default:
		slog.Error("Unexpected handler error",
			"error", err,
			"path", c.Request().URL.Path,
			"correlation_id", correlationID)
	}

	if status >= http.StatusInternalServerError {
		slog.Error("Request failed",
			"status", status,
			"path", c.Request().URL.Path,
			"error", err,
			"correlation_id", correlationID)
	}

	writeErr := c.JSON(status, &Response{
		Error:     respErr,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if writeErr != nil {
		slog.Error("Failed to write error response", "error", writeErr)
	}
}
