package http

import (
	"errors"
	"net/http"

	"chapatis/internal/core/domain/model/session"
	"chapatis/internal/core/domain/model/slot"
	"chapatis/internal/core/domain/services"
	"chapatis/internal/api/servers"
	"chapatis/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// StatusCode maps an application error to an HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, session.ErrMissingDeliveryDate),
		errors.Is(err, services.ErrSlotNotOffered):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, slot.ErrSlotFullyBooked),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := StatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = internalErrorMessage
	}

	return writeError(ctx, status, message)
}

func badRequest(ctx echo.Context, message string) error {
	return writeError(ctx, http.StatusBadRequest, message)
}

func writeError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{
		Code:    int32(status), //nolint:gosec // HTTP status codes fit in int32
		Message: message,
	})
}

// HTTPErrorHandler renders errors that escape the handlers, such as
// unmatched routes or malformed path parameters, in the API error format.
func (s *Server) HTTPErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := internalErrorMessage

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	} else {
		s.logger.ErrorContext(ctx.Request().Context(), "unhandled error", "error", err)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}

	_ = writeError(ctx, status, message)
}
