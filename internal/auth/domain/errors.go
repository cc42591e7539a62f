package domain

import "errors"

// Sentinel errors raised by session lifecycle checks. The refresh flow
// collapses both into a single externally visible error.
var (
	// ErrSessionNotFound is returned by Validate when the session is inactive.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTokenExpired is returned by Validate when the session is past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// ValidationError reports a value object constructed from malformed input.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}
