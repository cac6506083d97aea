package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
)

// LookupCall records the arguments of one LookupPUUID call.
type LookupCall struct {
	GameName string
	TagLine  string
	Platform routing.Platform
}

// StubProvider is an in-memory MatchProvider. Unknown keys yield providers.ErrNotFound.
// The *Err fields, when set, are returned by the matching operation instead.
type StubProvider struct {
	// PUUIDs is keyed by "gameName#tagLine".
	PUUIDs      map[string]string
	MatchIDs    map[string][]string
	Matches     map[string]matches.Match
	Timelines   map[string]matches.Timeline
	LookupErr   error
	ListErr     error
	MatchErr    error
	TimelineErr error

	mu            sync.Mutex
	lookups       []LookupCall
	fetchedIDs    []string
	timelineCalls int
	calls         int
}

func (s *StubProvider) record(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	fn()
}

func (s *StubProvider) LookupPUUID(ctx context.Context, gameName, tagLine string, platform routing.Platform) (string, error) {
	s.record(func() { s.lookups = append(s.lookups, LookupCall{gameName, tagLine, platform}) })
	if s.LookupErr != nil {
		return "", s.LookupErr
	}
	if puuid, ok := s.PUUIDs[gameName+"#"+tagLine]; ok {
		return puuid, nil
	}
	return "", fmt.Errorf("stub: %s#%s: %w", gameName, tagLine, providers.ErrNotFound)
}

func (s *StubProvider) ListRecentMatchIDs(ctx context.Context, puuid string, count int, platform routing.Platform) ([]string, error) {
	s.record(func() {})
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	ids, ok := s.MatchIDs[puuid]
	if !ok {
		return nil, fmt.Errorf("stub: history %s: %w", puuid, providers.ErrNotFound)
	}
	if count > 0 && len(ids) > count {
		ids = ids[:count]
	}
	return append([]string(nil), ids...), nil
}

func (s *StubProvider) FetchMatch(ctx context.Context, matchID string, platform routing.Platform) (matches.Match, error) {
	s.record(func() { s.fetchedIDs = append(s.fetchedIDs, matchID) })
	if s.MatchErr != nil {
		return matches.Match{}, s.MatchErr
	}
	if m, ok := s.Matches[matchID]; ok {
		return m, nil
	}
	return matches.Match{}, fmt.Errorf("stub: match %s: %w", matchID, providers.ErrNotFound)
}

func (s *StubProvider) FetchTimeline(ctx context.Context, matchID string, platform routing.Platform) (matches.Timeline, error) {
	s.record(func() { s.timelineCalls++ })
	if s.TimelineErr != nil {
		return matches.Timeline{}, s.TimelineErr
	}
	if tl, ok := s.Timelines[matchID]; ok {
		return tl, nil
	}
	return matches.Timeline{}, fmt.Errorf("stub: timeline %s: %w", matchID, providers.ErrNotFound)
}

// Calls returns the total number of operations invoked.
func (s *StubProvider) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Lookups returns the recorded identity lookups in call order.
func (s *StubProvider) Lookups() []LookupCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LookupCall(nil), s.lookups...)
}

// FetchedMatchIDs returns the fetched match ids, sorted for stable assertions
// since candidate fetches may run concurrently.
func (s *StubProvider) FetchedMatchIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]string(nil), s.fetchedIDs...)
	sort.Strings(out)
	return out
}

// TimelineCalls returns how many timelines were requested.
func (s *StubProvider) TimelineCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timelineCalls
}
