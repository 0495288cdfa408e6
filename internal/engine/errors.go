package engine

import "errors"

// All engine failures are local, recoverable validation errors. Callers
// match them with errors.Is and surface a message; nothing here is fatal.
var (
	// ErrInvalidRange indicates a malformed date range or step for
	// timeline generation.
	ErrInvalidRange = errors.New("engine: invalid timeline range")

	// ErrIncompleteDraft indicates a draft is missing or has an invalid
	// value for a field its declared type requires.
	ErrIncompleteDraft = errors.New("engine: incomplete transaction draft")

	// ErrEmptyTimeline indicates an attempt to score a projection with
	// zero samples.
	ErrEmptyTimeline = errors.New("engine: empty timeline")
)
