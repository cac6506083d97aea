package server

import (
	"log/slog"

	"github.com/preston-bernstein/lol-match-coach/internal/config"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/metrics"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	routes  routing.Table
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder, routes routing.Table) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, routes: routes}
}

func (f providerFactory) build(cfg config.Config) providers.MatchProvider {
	return f.wrap(cfg, selectProvider(cfg, f.routes, f.logger))
}

// wrap puts the client-side limiter inside the retry loop so every attempt waits for a token.
func (f providerFactory) wrap(cfg config.Config, base providers.MatchProvider) providers.MatchProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.Riot.RateLimitPerSecond, 1, f.logger)
	return providers.NewRetryingProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.Riot.MaxRetries, cfg.Riot.RetryBaseDelay)
}
