package analysis

import "errors"

var (
	// ErrMatchNotFound means the reference resolved but the match document could not be fetched.
	ErrMatchNotFound = errors.New("match not found")
	// ErrEmptyReference is returned when the request carries no match reference.
	ErrEmptyReference = errors.New("match reference is required")
)

// Outcome labels recorded with each analysis.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

// Narrative sources.
const (
	SourceAI       = "ai"
	SourceFallback = "fallback"
)
