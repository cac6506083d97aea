// Package analysis is the single entry point that turns a match reference into
// player metrics, an optional timeline summary and a narrative.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/stats"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
	"github.com/preston-bernstein/lol-match-coach/internal/metrics"
	"github.com/preston-bernstein/lol-match-coach/internal/narrative"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
	"github.com/preston-bernstein/lol-match-coach/internal/resolver"
)

// Resolver maps a reference to a canonical match id.
type Resolver interface {
	Resolve(ctx context.Context, input string, platform routing.Platform) (resolver.Resolution, error)
}

// Composer produces narrative text for an analysis.
type Composer interface {
	Compose(ctx context.Context, in narrative.Input) (string, error)
}

// Player optionally names the participant to analyze.
type Player struct {
	GameName    string `json:"game_name,omitempty"`
	TagLine     string `json:"tag_line,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// Options toggles the optional parts of an analysis.
type Options struct {
	UseAI           bool
	IncludeTimeline bool
	Lang            narrative.Lang
}

// Request is one analysis call.
type Request struct {
	Reference string
	Platform  routing.Platform
	Player    Player
	Options   Options
}

// Result bundles everything computed for one request.
type Result struct {
	MatchID         string                 `json:"match_id"`
	Platform        routing.Platform       `json:"platform"`
	Player          stats.PlayerMetrics    `json:"player"`
	Timeline        *stats.TimelineSummary `json:"timeline,omitempty"`
	Narrative       string                 `json:"narrative"`
	NarrativeSource string                 `json:"narrative_source"`
}

// Service coordinates the resolver, the match provider and the narrative composer.
type Service struct {
	resolver Resolver
	provider providers.MatchProvider
	composer Composer
	routes   routing.Table
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the collaborators. composer may be nil, in which case every
// narrative is the numeric fallback.
func NewService(res Resolver, provider providers.MatchProvider, composer Composer, routes routing.Table, recorder *metrics.Recorder, logger *slog.Logger) *Service {
	if routes.Empty() {
		routes = routing.DefaultTable()
	}
	return &Service{
		resolver: res,
		provider: provider,
		composer: composer,
		routes:   routes,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// Analyze runs the full pipeline for req.
func (s *Service) Analyze(ctx context.Context, req Request) (Result, error) {
	start := s.now()
	res, err := s.analyze(ctx, req)
	s.recorder.RecordAnalysis(outcomeOf(err), s.now().Sub(start))
	return res, err
}

func (s *Service) analyze(ctx context.Context, req Request) (Result, error) {
	logger := logging.FromContext(ctx, s.logger)

	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		return Result{}, ErrEmptyReference
	}

	resolution, err := s.resolver.Resolve(ctx, reference, req.Platform)
	if err != nil {
		return Result{}, err
	}
	platform := resolution.Platform
	logger = logging.MatchScope(logger, resolution.MatchID, string(platform))

	match, err := s.provider.FetchMatch(ctx, resolution.MatchID, platform)
	if err != nil {
		if errors.Is(err, providers.ErrNotFound) {
			return Result{}, fmt.Errorf("%w: %s", ErrMatchNotFound, resolution.MatchID)
		}
		return Result{}, err
	}

	selector, err := s.selector(ctx, resolution, req.Player, platform)
	if err != nil {
		return Result{}, err
	}
	target := stats.SelectTarget(match, selector)

	player, err := stats.ComputeMetrics(match, target)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrMatchNotFound, err)
	}

	out := Result{
		MatchID:  resolution.MatchID,
		Platform: platform,
		Player:   player,
	}

	if req.Options.IncludeTimeline {
		if out.Timeline, err = s.timeline(ctx, match, resolution.MatchID, platform, target); err != nil {
			return Result{}, err
		}
	}

	in := narrative.Input{
		MatchID:  out.MatchID,
		Lang:     req.Options.Lang,
		Metrics:  out.Player,
		Timeline: out.Timeline,
	}
	out.Narrative, out.NarrativeSource = s.narrate(ctx, in, req.Options.UseAI)
	s.recorder.RecordNarrative(out.NarrativeSource)

	logging.Info(logger, "analysis complete",
		logging.FieldTarget, player.Name,
		logging.FieldNarrative, out.NarrativeSource,
		logging.FieldLang, string(req.Options.Lang),
	)
	return out, nil
}

// selector prefers an explicit lookup of the requested player, then the PUUID
// found while resolving a profile URL, then name matching inside the match.
// A requested player missing from the identity service is matched by name,
// never by the URL owner.
func (s *Service) selector(ctx context.Context, resolution resolver.Resolution, player Player, platform routing.Platform) (stats.Selector, error) {
	sel := stats.Selector{DisplayName: strings.TrimSpace(player.DisplayName)}
	if sel.DisplayName == "" {
		sel.DisplayName = strings.TrimSpace(player.GameName)
	}
	if strings.TrimSpace(player.GameName) == "" {
		sel.PUUID = resolution.PUUID
		return sel, nil
	}

	tag := strings.TrimSpace(player.TagLine)
	if tag == "" {
		tag = s.routes.DefaultTagLine(platform)
	}
	puuid, err := s.provider.LookupPUUID(ctx, strings.TrimSpace(player.GameName), tag, platform)
	switch {
	case err == nil:
		sel.PUUID = puuid
	case errors.Is(err, providers.ErrNotFound):
		logging.Debug(logging.FromContext(ctx, s.logger), "player lookup missed; matching by name",
			logging.FieldGameName, player.GameName,
			logging.FieldTagLine, tag,
		)
	default:
		return stats.Selector{}, err
	}
	return sel, nil
}

// timeline returns nil when the provider has no timeline for the match and
// fails on every other fetch error. A target missing from the timeline yields
// Available=false.
func (s *Service) timeline(ctx context.Context, match matches.Match, matchID string, platform routing.Platform, target int) (*stats.TimelineSummary, error) {
	tl, err := s.provider.FetchTimeline(ctx, matchID, platform)
	if errors.Is(err, providers.ErrNotFound) {
		logging.Warn(logging.FromContext(ctx, s.logger), "timeline unavailable",
			logging.FieldMatchID, matchID,
			"err", err,
		)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var opponent *int
	if idx, ok := stats.LaneOpponent(match, target); ok {
		opponent = &idx
	}
	summary := stats.Summarize(match, tl, target, opponent)
	return &summary, nil
}

func (s *Service) narrate(ctx context.Context, in narrative.Input, useAI bool) (string, string) {
	if useAI && s.composer != nil {
		text, err := s.composer.Compose(ctx, in)
		if err == nil && strings.TrimSpace(text) != "" {
			return text, SourceAI
		}
	}
	return narrative.Fallback(in), SourceFallback
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrEmptyReference), errors.Is(err, resolver.ErrUnrecognizedReference):
		return OutcomeInvalid
	case errors.Is(err, ErrMatchNotFound),
		errors.Is(err, resolver.ErrIdentityNotFound),
		errors.Is(err, resolver.ErrNoRecentMatches),
		errors.Is(err, resolver.ErrNoMatchingTimestamp):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
