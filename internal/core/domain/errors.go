package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input: a blank path,
	// a path that does not resolve to an existing regular file, or an
	// unknown policy name. Raised at construction or parse time, never
	// deferred to query time.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotConfigured indicates a required service has not been wired.
	ErrNotConfigured = errors.New("not configured")
)
