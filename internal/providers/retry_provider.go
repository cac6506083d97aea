package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
	"github.com/preston-bernstein/lol-match-coach/internal/metrics"
)

const (
	defaultMaxRetries = 2
	defaultBaseDelay  = 500 * time.Millisecond
	maxRetryDelay     = 8 * time.Second
)

type backoffFactory func() backoff.BackOff

// retryingProvider retries rate-limited calls on an exponential schedule.
// Any other failure is returned on the first attempt.
type retryingProvider struct {
	inner        MatchProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxRetries   int
	newBackOff   backoffFactory
}

// NewRetryingProvider wraps inner so that a 429 is retried up to maxRetries more times,
// waiting baseDelay, 2*baseDelay, ... between attempts. Non-positive values use defaults.
func NewRetryingProvider(inner MatchProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string, maxRetries int, baseDelay time.Duration) MatchProvider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}
	if providerName == "" {
		providerName = NameOf(inner, "provider")
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		maxRetries:   maxRetries,
		newBackOff:   exponentialBackOff(baseDelay),
	}
}

func exponentialBackOff(base time.Duration) backoffFactory {
	return func() backoff.BackOff {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = base
		b.Multiplier = 2
		b.RandomizationFactor = 0
		b.MaxInterval = maxRetryDelay
		b.MaxElapsedTime = 0
		b.Reset()
		return b
	}
}

func (r *retryingProvider) Name() string {
	return r.providerName
}

func (r *retryingProvider) LookupPUUID(ctx context.Context, gameName, tagLine string, platform routing.Platform) (string, error) {
	return retryCall(ctx, r, "lookup_puuid", func(ctx context.Context) (string, error) {
		return r.inner.LookupPUUID(ctx, gameName, tagLine, platform)
	})
}

func (r *retryingProvider) ListRecentMatchIDs(ctx context.Context, puuid string, count int, platform routing.Platform) ([]string, error) {
	return retryCall(ctx, r, "list_match_ids", func(ctx context.Context) ([]string, error) {
		return r.inner.ListRecentMatchIDs(ctx, puuid, count, platform)
	})
}

func (r *retryingProvider) FetchMatch(ctx context.Context, matchID string, platform routing.Platform) (matches.Match, error) {
	return retryCall(ctx, r, "fetch_match", func(ctx context.Context) (matches.Match, error) {
		return r.inner.FetchMatch(ctx, matchID, platform)
	})
}

func (r *retryingProvider) FetchTimeline(ctx context.Context, matchID string, platform routing.Platform) (matches.Timeline, error) {
	return retryCall(ctx, r, "fetch_timeline", func(ctx context.Context) (matches.Timeline, error) {
		return r.inner.FetchTimeline(ctx, matchID, platform)
	})
}

func retryCall[T any](ctx context.Context, r *retryingProvider, op string, fn func(context.Context) (T, error)) (T, error) {
	if r == nil || r.inner == nil {
		var zero T
		return zero, ErrProviderUnavailable
	}

	var (
		attempt    int
		retryAfter time.Duration
	)
	operation := func() (T, error) {
		attempt++
		start := time.Now()
		res, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, op, attemptResult(err), time.Since(start))
		if err == nil {
			return res, nil
		}
		rlErr, ok := AsRateLimitError(err)
		if !ok {
			return res, backoff.Permanent(err)
		}
		retryAfter = rlErr.RetryAfter
		r.metrics.RecordRateLimit(r.providerName, op, rlErr.RetryAfter)
		return res, err
	}
	notify := func(err error, delay time.Duration) {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider rate limited, retrying",
			slog.String(logging.FieldOperation, op),
			slog.Int(logging.FieldAttempt, attempt),
			slog.Duration("delay", delay),
			slog.Any("err", err),
		)
	}

	schedule := &retryAfterBackOff{BackOff: r.newBackOff(), hint: &retryAfter}
	b := backoff.WithContext(backoff.WithMaxRetries(schedule, uint64(r.maxRetries)), ctx)

	res, err := backoff.RetryNotifyWithData(operation, b, notify)
	if err != nil {
		if _, limited := AsRateLimitError(err); limited {
			logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider still rate limited after retries",
				slog.String(logging.FieldOperation, op),
				slog.Int(logging.FieldAttempt, attempt),
			)
		}
	}
	return res, err
}

// retryAfterBackOff stretches the next delay to the upstream Retry-After hint, capped at maxRetryDelay.
type retryAfterBackOff struct {
	backoff.BackOff
	hint *time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	next := b.BackOff.NextBackOff()
	if next == backoff.Stop || b.hint == nil {
		return next
	}
	if hint := min(*b.hint, maxRetryDelay); hint > next {
		next = hint
	}
	return next
}

// attemptResult buckets an attempt error for the provider_attempts_total result attribute.
func attemptResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	if _, ok := AsRateLimitError(err); ok {
		return "rate_limited"
	}
	if IsTransportError(err) {
		return "transport"
	}
	return "error"
}
