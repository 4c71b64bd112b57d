package errors

import (
	"errors"
	"net/http"
)

const (
	KindValidation = "validation"
	KindConflict   = "conflict"
	KindStore      = "store"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Kind    string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, kind, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// Helpers for the error taxonomy
var (
	NewValidationError = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, KindValidation, msg) }
	NewConflictError   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, KindConflict, msg) }
	NewStoreError      = func(msg string) *HTTPError { return NewHTTPError(http.StatusInternalServerError, KindStore, msg) }
)

// Status returns the HTTP status code for err, defaulting to 500.
func Status(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

func isKind(err error, kind string) bool {
	var he *HTTPError
	return errors.As(err, &he) && he.Kind == kind
}

func IsValidation(err error) bool { return isKind(err, KindValidation) }
func IsConflict(err error) bool   { return isKind(err, KindConflict) }
func IsStore(err error) bool      { return isKind(err, KindStore) }
