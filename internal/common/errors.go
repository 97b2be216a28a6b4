// Package common defines shared constants and sentinel errors used across
// client and server layers of tokengate. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrVersionConflict = errors.New("version conflict")
	ErrConflict        = errors.New("already exists")

	// Service-level errors.
	ErrorInternal      = errors.New("internal error")
	ErrUnauthenticated = errors.New("unauthenticated")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// StoreError is a persistence failure carrying user-facing messages.
// Services surface Messages verbatim; Err keeps the underlying cause for logs.
type StoreError struct {
	Messages []string
	Err      error
}

func NewStoreError(err error, messages ...string) *StoreError {
	return &StoreError{Messages: messages, Err: err}
}

func (e *StoreError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// StoreMessages extracts the user-facing messages of a StoreError anywhere in
// err's chain. ok is false when err carries none.
func StoreMessages(err error) (messages []string, ok bool) {
	var se *StoreError
	if errors.As(err, &se) && len(se.Messages) > 0 {
		return se.Messages, true
	}
	return nil, false
}
