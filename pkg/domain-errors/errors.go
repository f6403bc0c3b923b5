// Package domainerrors defines the coded errors shared across services so
// transport code can map failures to HTTP statuses without string matching.
package domainerrors

import (
	"errors"
	"net/http"
)

// Code classifies a domain error for transport mapping.
type Code string

const (
	// CodeBadRequest covers malformed bodies and validation failures.
	CodeBadRequest Code = "bad_request"
	// CodeRateLimited marks requests rejected by the submission gate.
	CodeRateLimited Code = "rate_limited"
	// CodeInternal covers persistence and other infrastructure failures.
	// The message attached to it is already user-safe; the real cause is
	// logged where the error is raised.
	CodeInternal Code = "internal_error"
)

// Error is a user-presentable coded error. Message is the string shown to
// the end user verbatim; never put internal detail in it.
type Error struct {
	Code    Code
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// New builds a coded error with a user-facing message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches an internal cause that Error() exposes for logs but
// WriteError never sends to the client.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ToHTTPStatus maps a code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
