package narrative

import "errors"

var (
	// ErrGenerationFailed wraps every generator failure. Callers degrade to Fallback.
	ErrGenerationFailed = errors.New("narrative generation failed")
	// ErrNotConfigured means the generator has no credentials; no call was made.
	ErrNotConfigured = errors.New("narrative generator not configured")
)
