package usecase

import "errors"

var (
	// ErrInvalidInput covers empty or unresolvable target-skill sets and
	// malformed identifiers. Rejected immediately with a client-facing error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataUnavailable means the catalog store could not be read. Surfaced
	// as a server error with no partial results; never retried silently.
	ErrDataUnavailable = errors.New("catalog data unavailable")

	// ErrUniversityNotFound is only used by lookups that address one entity
	// directly (metrics, degree listing). Recommendation endpoints degrade
	// unknown references to empty result sets instead.
	ErrUniversityNotFound = errors.New("university not found")
)
