package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the application error carried from service logic to the HTTP
// boundary. Code is stable and machine-readable, Message is for humans.
type Error struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(status int, code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

func Validation(message string) *Error {
	return New(http.StatusBadRequest, "BAD_REQUEST", message)
}

func NotFound(message string) *Error {
	return New(http.StatusNotFound, "NOT_FOUND", message)
}

func InvalidTransition(from, to string) *Error {
	return New(http.StatusBadRequest, "INVALID_TRANSITION",
		fmt.Sprintf("Cannot transition from %s to %s", from, to))
}

func Conflict(message string) *Error {
	return New(http.StatusConflict, "CONFLICT", message)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(message string) *Error {
	return New(http.StatusForbidden, "FORBIDDEN", message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, "INTERNAL_ERROR", message)
}

// From extracts an *Error from err, wrapping unknown errors as INTERNAL_ERROR
// so the boundary never leaks raw error strings with a 200-range status.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("An unexpected error occurred")
}

// IsCode reports whether err carries the given application error code.
func IsCode(err error, code string) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
