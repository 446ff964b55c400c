package middleware

import (
	"log/slog"
	"net/http"

	"scout/internal/delivery/http/response"
	domainerrors "scout/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware translates errors escaping the handlers into the wire
// format. Handlers return domain errors as-is; this is the single place
// that maps them to status codes.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError handles errors as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = response.AppError(c, appErr)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code := "bad_request"
		if httpErr.Code >= http.StatusInternalServerError {
			code = "internal_error"
		}
		_ = response.Error(c, httpErr.Code, code)

		return
	}

	// Anything else is unexpected; log it and hide the detail.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.AppError(c, domainerrors.ErrInternal)
}
