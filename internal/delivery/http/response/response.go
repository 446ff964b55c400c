// Package response defines the wire format shared by all endpoints.
// Successes are endpoint-specific JSON objects; failures are always
// {"error": "<code>"} with the status carried by the HTTP layer.
package response

import (
	"github.com/labstack/echo/v4"

	domainerrors "scout/internal/domain/errors"
)

// ErrorBody is the error response body.
type ErrorBody struct {
	Error string `json:"error"`
}

// OKBody is the plain acknowledgment body used by register and favorite
// append.
type OKBody struct {
	OK bool `json:"ok"`
}

// JSON writes an endpoint-specific success body.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes the standard {"ok":true} acknowledgment.
func OK(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, OKBody{OK: true})
}

// Error writes an error code with an explicit status.
func Error(c echo.Context, statusCode int, errorCode string) error {
	return c.JSON(statusCode, ErrorBody{Error: errorCode})
}

// AppError writes an application error using its own status and wire code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), ErrorBody{Error: appErr.ErrorCode()})
}
