package server

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/lol-match-coach/internal/app/analysis"
	"github.com/preston-bernstein/lol-match-coach/internal/config"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/http/handlers"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
	"github.com/preston-bernstein/lol-match-coach/internal/metrics"
	"github.com/preston-bernstein/lol-match-coach/internal/narrative"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
	"github.com/preston-bernstein/lol-match-coach/internal/resolver"
)

var errRiotNotConfigured = errors.New("RIOT_API_KEY is not set")

func buildAnalysis(cfg config.Config, routes routing.Table, provider providers.MatchProvider, recorder *metrics.Recorder, logger *slog.Logger) *analysis.Service {
	res := resolver.New(provider, resolver.Config{
		Routes:          routes,
		DefaultPlatform: routing.Normalize(cfg.Riot.DefaultPlatform),
		MatchCount:      cfg.Riot.MatchCount,
		Concurrency:     cfg.Riot.CandidateWorkers,
	}, logger)

	var composer analysis.Composer
	if strings.TrimSpace(cfg.Narrative.APIKey) != "" {
		composer = narrative.NewComposer(narrative.NewOpenAIClient(narrative.OpenAIConfig{
			APIKey:  cfg.Narrative.APIKey,
			BaseURL: cfg.Narrative.BaseURL,
			Model:   cfg.Narrative.Model,
			Timeout: cfg.Narrative.Timeout,
		}), logger)
	} else {
		logging.Info(logger, "OPENAI_API_KEY not set, narratives use the numeric summary")
	}

	return analysis.NewService(res, provider, composer, routes, recorder, logger)
}

// readiness fails only when the live provider is selected without credentials.
func readiness(cfg config.Config) handlers.ReadyFunc {
	return func() error {
		switch cfg.Provider {
		case providerRiot, "":
			if !cfg.Riot.Configured() {
				return errRiotNotConfigured
			}
		}
		return nil
	}
}
