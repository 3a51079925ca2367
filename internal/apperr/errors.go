// Package apperr defines coded application errors shared by the domain
// services and the transports that surface them.
package apperr

import (
	"errors"
	"fmt"

	"github.com/rpggio/tradeledger/internal/repository"
)

// Code is a machine-readable error code.
type Code string

const (
	CodeUnknown      Code = "UNKNOWN"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeUnavailable  Code = "UNAVAILABLE"
	CodeUnauthorized Code = "UNAUTHORIZED"
)

// Error is a domain error carrying a code.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a coded error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a coded error around cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Invalid builds an input validation error for a named field.
func Invalid(field, reason string) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf("invalid %s: %s", field, reason)}
}

// CodeOf classifies err, falling back to the repository sentinels for
// errors that never passed through a domain service.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	switch {
	case errors.Is(err, repository.ErrUnavailable):
		return CodeUnavailable
	case errors.Is(err, repository.ErrNotFound):
		return CodeNotFound
	case errors.Is(err, repository.ErrConflict):
		return CodeConflict
	case errors.Is(err, repository.ErrForeignKeyViolation), errors.Is(err, repository.ErrInvalidInput):
		return CodeInvalidInput
	default:
		return CodeUnknown
	}
}
