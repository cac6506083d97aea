package server

import (
	"log/slog"

	"github.com/preston-bernstein/lol-match-coach/internal/config"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
	"github.com/preston-bernstein/lol-match-coach/internal/providers/fixture"
	"github.com/preston-bernstein/lol-match-coach/internal/providers/riot"
)

const (
	providerRiot    = "riot"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, routes routing.Table, logger *slog.Logger) providers.MatchProvider {
	switch cfg.Provider {
	case providerFixture:
		return fixture.New()
	case providerRiot, "":
		return riot.NewClient(riot.Config{
			BaseURL:         cfg.Riot.BaseURL,
			APIKey:          cfg.Riot.APIKey,
			Routes:          routes,
			LookupTimeout:   cfg.Riot.LookupTimeout,
			TimelineTimeout: cfg.Riot.TimelineTimeout,
			Logger:          logger,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
