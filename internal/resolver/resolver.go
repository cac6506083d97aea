// Package resolver turns a match reference (a match id, or a third-party
// stats-site URL naming a player) into a canonical match id.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/logging"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
	"github.com/preston-bernstein/lol-match-coach/internal/timeutil"
)

const (
	minMatchCount      = 20
	defaultConcurrency = 4
)

// Config is fixed at construction time.
type Config struct {
	Routes          routing.Table
	DefaultPlatform routing.Platform
	// MatchCount is how many recent ids to list; values below 20 are raised to 20.
	MatchCount int
	// Concurrency bounds parallel candidate fetches during timestamp matching.
	Concurrency int
}

// Resolution is the outcome of a successful Resolve.
type Resolution struct {
	MatchID   string           `json:"matchId"`
	Platform  routing.Platform `json:"platform"`
	PUUID     string           `json:"puuid,omitempty"`
	Handle    *Handle          `json:"handle,omitempty"`
	Timestamp *int64           `json:"timestamp,omitempty"`
}

// Resolver is safe for concurrent use.
type Resolver struct {
	provider        providers.MatchProvider
	routes          routing.Table
	defaultPlatform routing.Platform
	matchCount      int
	concurrency     int
	logger          *slog.Logger
}

// New builds a resolver over the given provider.
func New(provider providers.MatchProvider, cfg Config, logger *slog.Logger) *Resolver {
	if cfg.Routes.Empty() {
		cfg.Routes = routing.DefaultTable()
	}
	if cfg.DefaultPlatform == "" {
		cfg.DefaultPlatform = "euw1"
	}
	if cfg.MatchCount < minMatchCount {
		cfg.MatchCount = minMatchCount
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	return &Resolver{
		provider:        provider,
		routes:          cfg.Routes,
		defaultPlatform: routing.Normalize(string(cfg.DefaultPlatform)),
		matchCount:      cfg.MatchCount,
		concurrency:     cfg.Concurrency,
		logger:          logger,
	}
}

// Resolve maps input to a canonical match id. An empty platform is inferred
// from the reference, falling back to the configured default.
func (r *Resolver) Resolve(ctx context.Context, input string, platform routing.Platform) (Resolution, error) {
	input = strings.TrimSpace(input)
	platform = routing.Normalize(string(platform))

	if id, ok := canonicalID(input); ok {
		return Resolution{MatchID: id, Platform: r.platformFor(platform, id, "")}, nil
	}

	ref, ok := parseSiteURL(input)
	if !ok {
		return Resolution{}, fmt.Errorf("%w: %q", ErrUnrecognizedReference, input)
	}
	platform = r.platformFor(platform, "", ref.region)
	if ref.handle.TagLine == "" {
		ref.handle.TagLine = r.routes.DefaultTagLine(platform)
	}

	res := Resolution{Platform: platform, Handle: &ref.handle, Timestamp: ref.timestamp}
	logger := logging.FromContext(ctx, r.logger)

	puuid, err := r.provider.LookupPUUID(ctx, ref.handle.GameName, ref.handle.TagLine, platform)
	if err != nil {
		if errors.Is(err, providers.ErrNotFound) {
			return Resolution{}, fmt.Errorf("%w: %s", ErrIdentityNotFound, ref.handle)
		}
		return Resolution{}, fmt.Errorf("lookup %s: %w", ref.handle, err)
	}
	res.PUUID = puuid

	ids, err := r.provider.ListRecentMatchIDs(ctx, puuid, r.matchCount, platform)
	if err != nil && !errors.Is(err, providers.ErrNotFound) {
		return Resolution{}, fmt.Errorf("list matches for %s: %w", ref.handle, err)
	}
	if len(ids) == 0 {
		return Resolution{}, fmt.Errorf("%w: %s", ErrNoRecentMatches, ref.handle)
	}

	if ref.timestamp == nil {
		res.MatchID = ids[0]
	} else {
		logging.Debug(logger, "matching recent games by start time",
			"target", timeutil.FromUnixMillis(*ref.timestamp).Format(time.RFC3339),
			logging.FieldCount, len(ids),
		)
		id, err := r.nearestToTimestamp(ctx, ids, *ref.timestamp, platform)
		if err != nil {
			return Resolution{}, err
		}
		res.MatchID = id
	}

	logging.Info(logger, "match reference resolved",
		logging.FieldMatchID, res.MatchID,
		logging.FieldPlatform, string(res.Platform),
		logging.FieldCount, len(ids),
	)
	return res, nil
}

// nearestToTimestamp fetches every candidate and picks the smallest
// |start - ts|. On ties the earlier candidate in provider order wins.
func (r *Resolver) nearestToTimestamp(ctx context.Context, ids []string, ts int64, platform routing.Platform) (string, error) {
	starts := make([]*int64, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			m, err := r.provider.FetchMatch(gctx, id, platform)
			if err != nil {
				if errors.Is(err, providers.ErrNotFound) {
					return nil
				}
				return fmt.Errorf("fetch candidate %s: %w", id, err)
			}
			starts[i] = m.StartTimestampMS
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	best := -1
	var bestDiff int64
	for i, start := range starts {
		if start == nil {
			continue
		}
		if diff := timeutil.AbsDiffMS(*start, ts); best < 0 || diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best < 0 {
		return "", fmt.Errorf("%w: %d", ErrNoMatchingTimestamp, ts)
	}
	return ids[best], nil
}

// platformFor picks the explicit platform, then one implied by the reference, then the default.
func (r *Resolver) platformFor(explicit routing.Platform, matchID, region string) routing.Platform {
	if explicit != "" {
		return explicit
	}
	if prefix, _, ok := strings.Cut(matchID, "_"); ok {
		if p := routing.Normalize(prefix); r.routes.Known(p) {
			return p
		}
	}
	if region != "" {
		if p, ok := r.routes.FromAlias(region); ok {
			return p
		}
	}
	return r.defaultPlatform
}
