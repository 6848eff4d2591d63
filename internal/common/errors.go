// Package common defines shared constants and sentinel errors used across
// taskboard layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already in use")

	// Service-level errors (generic flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Auth errors. A malformed, tampered or expired token all map to
	// ErrInvalidToken so the caller cannot tell which check failed.
	ErrInvalidToken = errors.New("invalid token")
)
