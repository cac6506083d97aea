package providers

import (
	"context"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
)

// MatchProvider fetches player identities and normalized match records from an upstream source.
// Platform selects the shard; implementations derive the regional route from it.
type MatchProvider interface {
	// LookupPUUID returns the persistent player id for a Riot ID, trying the
	// regional account service before the legacy platform lookup by name.
	LookupPUUID(ctx context.Context, gameName, tagLine string, platform routing.Platform) (string, error)
	// ListRecentMatchIDs returns up to count match ids, most recent first.
	ListRecentMatchIDs(ctx context.Context, puuid string, count int, platform routing.Platform) ([]string, error)
	FetchMatch(ctx context.Context, matchID string, platform routing.Platform) (matches.Match, error)
	FetchTimeline(ctx context.Context, matchID string, platform routing.Platform) (matches.Timeline, error)
}

// Named providers report a stable name for logs and metrics.
type Named interface {
	Name() string
}

// NameOf returns the provider's reported name, or fallback.
func NameOf(p MatchProvider, fallback string) string {
	if n, ok := p.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return fallback
}
