// Package errors defines the application error taxonomy. Every failure a
// client can observe is one of the predefined AppError values; the HTTP
// layer translates them into status codes and wire error codes.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Wire error code, e.g. "email_taken"
	Message() string   // Human-readable error message
}

// BaseError is the standard AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the wire error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the human-readable error message.
func (e *BaseError) Message() string {
	return e.message
}

var (
	// Registration errors
	ErrMissingFields = NewBaseError(
		http.StatusBadRequest,
		"missing_fields",
		"email, password and age are required",
	)

	ErrUnderage = NewBaseError(
		http.StatusForbidden,
		"must_be_18",
		"you must be at least 18 to register",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"email_taken",
		"this email is already registered",
	)

	// Login errors. no_user and wrong_pass remain distinct codes to match
	// the documented wire contract.
	ErrNoUser = NewBaseError(
		http.StatusBadRequest,
		"no_user",
		"no account exists for this email",
	)

	ErrWrongPassword = NewBaseError(
		http.StatusBadRequest,
		"wrong_pass",
		"wrong password",
	)

	// Authentication errors
	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"no_token",
		"missing bearer token",
	)

	ErrBadToken = NewBaseError(
		http.StatusUnauthorized,
		"bad_token",
		"invalid or expired token",
	)

	// Search errors
	ErrNoQuery = NewBaseError(
		http.StatusBadRequest,
		"no_query",
		"query is required",
	)

	// The account referenced by a still-valid token no longer exists.
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"user_not_found",
		"account not found",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"internal_error",
		"internal server error",
	)
)
