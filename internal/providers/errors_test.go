package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestTransportErrorUnwraps(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &TransportError{Provider: "riot", Op: "match", Err: context.DeadlineExceeded})

	if !IsTransportError(err) {
		t.Fatalf("expected transport error to be detected")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be reachable through Unwrap")
	}
	if IsTransportError(ErrNotFound) {
		t.Fatalf("not found should not be a transport error")
	}
	if _, ok := AsRateLimitError(err); ok {
		t.Fatalf("transport error should not look like a rate limit")
	}
}
