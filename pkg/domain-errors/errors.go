// Package domainerrors defines the code-based error type used across all
// services. Handlers translate codes to HTTP statuses in one place
// (pkg/platform/httputil) so domain code never imports net/http.
package domainerrors

import "errors"

// Code identifies an error class. The string value is the wire-level error
// code returned to clients.
type Code string

const (
	CodeBadRequest     Code = "bad_request"
	CodeValidation     Code = "validation_error"
	CodeUnauthorized   Code = "unauthorized"
	CodeNotFound       Code = "not_found"
	CodeInvalidPayload Code = "invalid_payload"
	CodeUnavailable    Code = "unavailable"
	CodeInternal       Code = "internal_error"
)

// Error is a domain error with a stable code and a human-readable message.
type Error struct {
	Code    Code
	Message string
	wrapped error
}

// New creates a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches an underlying cause while keeping the domain code visible.
func Wrap(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, wrapped: err}
}

func (e *Error) Error() string {
	if e.wrapped != nil {
		return e.Message + ": " + e.wrapped.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.wrapped
}

// Is matches on code so callers can compare against sentinel errors.
func (e *Error) Is(target error) bool {
	var de *Error
	if errors.As(target, &de) {
		return de.Code == e.Code
	}
	return false
}

// CodeOf extracts the domain code from any error chain. Unknown errors are
// reported as internal so unexpected failures never leak details outward.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
