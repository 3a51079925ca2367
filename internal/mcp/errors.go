package mcp

import (
	"errors"
	"fmt"

	"github.com/rpggio/tradeledger/internal/apperr"
)

// APIError is the error a tool call reports back to the assistant.
type APIError struct {
	Code         apperr.Code `json:"code"`
	Message      string      `json:"message"`
	RecoveryHint string      `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

var errUnauthorized = &APIError{
	Code:         apperr.CodeUnauthorized,
	Message:      "please login",
	RecoveryHint: "Send the session token as a Bearer header",
}

// MapError classifies a service error for the assistant.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	switch apperr.CodeOf(err) {
	case apperr.CodeUnavailable:
		return &APIError{Code: apperr.CodeUnavailable, Message: "database not available", RecoveryHint: "Retry later"}
	case apperr.CodeNotFound:
		return &APIError{Code: apperr.CodeNotFound, Message: err.Error()}
	case apperr.CodeUnauthorized:
		return errUnauthorized
	case apperr.CodeInvalidInput:
		return &APIError{Code: apperr.CodeInvalidInput, Message: err.Error()}
	default:
		return &APIError{Code: apperr.CodeUnknown, Message: "internal error"}
	}
}
