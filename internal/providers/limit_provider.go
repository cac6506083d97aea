package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
)

// rateLimitedProvider paces calls to the wrapped provider with a token bucket.
type rateLimitedProvider struct {
	next    MatchProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a MatchProvider that allows perSecond calls with the given burst.
// Calls block until a token is available or the context ends. perSecond <= 0 disables pacing.
func NewRateLimitedProvider(next MatchProvider, perSecond float64, burst int, logger *slog.Logger) MatchProvider {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) Name() string {
	return NameOf(p.next, "rate-limited")
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		logWithProvider(ctx, p.loggerOrNil(), slog.LevelWarn, "rate-limited", "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.Name(), "rate-limited call canceled",
			slog.String(logging.FieldOperation, op), slog.Any("err", err))
		return err
	}
	return nil
}

func (p *rateLimitedProvider) loggerOrNil() *slog.Logger {
	if p == nil {
		return nil
	}
	return p.logger
}

func (p *rateLimitedProvider) LookupPUUID(ctx context.Context, gameName, tagLine string, platform routing.Platform) (string, error) {
	if err := p.wait(ctx, "lookup_puuid"); err != nil {
		return "", err
	}
	return p.next.LookupPUUID(ctx, gameName, tagLine, platform)
}

func (p *rateLimitedProvider) ListRecentMatchIDs(ctx context.Context, puuid string, count int, platform routing.Platform) ([]string, error) {
	if err := p.wait(ctx, "list_match_ids"); err != nil {
		return nil, err
	}
	return p.next.ListRecentMatchIDs(ctx, puuid, count, platform)
}

func (p *rateLimitedProvider) FetchMatch(ctx context.Context, matchID string, platform routing.Platform) (matches.Match, error) {
	if err := p.wait(ctx, "fetch_match"); err != nil {
		return matches.Match{}, err
	}
	return p.next.FetchMatch(ctx, matchID, platform)
}

func (p *rateLimitedProvider) FetchTimeline(ctx context.Context, matchID string, platform routing.Platform) (matches.Timeline, error) {
	if err := p.wait(ctx, "fetch_timeline"); err != nil {
		return matches.Timeline{}, err
	}
	return p.next.FetchTimeline(ctx, matchID, platform)
}
