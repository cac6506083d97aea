package resolver

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
	"github.com/preston-bernstein/lol-match-coach/internal/testutil"
)

func startAt(ms int64) matches.Match {
	return matches.Match{StartTimestampMS: &ms}
}

func newTestResolver(sp *testutil.StubProvider) *Resolver {
	return New(sp, Config{Routes: routing.DefaultTable(), DefaultPlatform: "euw1"}, nil)
}

func TestResolveCanonicalMakesNoCalls(t *testing.T) {
	sp := &testutil.StubProvider{}
	r := newTestResolver(sp)

	for i := 0; i < 2; i++ {
		res, err := r.Resolve(context.Background(), "EUW1_1234567890", "")
		if err != nil {
			t.Fatalf("unexpected error %v", err)
		}
		if res.MatchID != "EUW1_1234567890" || res.Platform != "euw1" {
			t.Fatalf("unexpected resolution %+v", res)
		}
	}
	if sp.Calls() != 0 {
		t.Fatalf("expected no provider calls, got %d", sp.Calls())
	}
}

func TestResolveEmbeddedID(t *testing.T) {
	sp := &testutil.StubProvider{}
	res, err := newTestResolver(sp).Resolve(context.Background(), "look at https://x.example/m/KR_55555?tab=build", "")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.MatchID != "KR_55555" || res.Platform != "kr" {
		t.Fatalf("unexpected resolution %+v", res)
	}
	if sp.Calls() != 0 {
		t.Fatalf("expected no provider calls")
	}
}

func TestResolveURLWithoutTimestampTakesMostRecent(t *testing.T) {
	sp := &testutil.StubProvider{
		PUUIDs:   map[string]string{"name#1234": "p-1"},
		MatchIDs: map[string][]string{"p-1": {"EUW1_3", "EUW1_2", "EUW1_1"}},
	}

	res, err := newTestResolver(sp).Resolve(context.Background(), "https://www.op.gg/summoners/euw/name-1234/matches", "")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.MatchID != "EUW1_3" {
		t.Fatalf("expected most recent match, got %s", res.MatchID)
	}
	lookups := sp.Lookups()
	if len(lookups) != 1 || lookups[0].GameName != "name" || lookups[0].TagLine != "1234" {
		t.Fatalf("unexpected lookups %+v", lookups)
	}
	if res.PUUID != "p-1" || res.Handle == nil || res.Handle.GameName != "name" {
		t.Fatalf("expected identity on resolution, got %+v", res)
	}
	if len(sp.FetchedMatchIDs()) != 0 {
		t.Fatalf("expected no candidate fetches without a timestamp")
	}
}

func TestResolveURLWithTimestampPicksNearestStart(t *testing.T) {
	sp := &testutil.StubProvider{
		PUUIDs:   map[string]string{"name#1234": "p-1"},
		MatchIDs: map[string][]string{"p-1": {"EUW1_A1", "EUW1_B2"}},
		Matches: map[string]matches.Match{
			"EUW1_A1": startAt(1000),
			"EUW1_B2": startAt(5000),
		},
	}

	res, err := newTestResolver(sp).Resolve(context.Background(), "https://www.op.gg/summoners/euw/name-1234/matches/x/1200", "")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.MatchID != "EUW1_A1" {
		t.Fatalf("expected candidate starting at 1000ms, got %s", res.MatchID)
	}
	if res.Timestamp == nil || *res.Timestamp != 1200 {
		t.Fatalf("expected timestamp on resolution, got %v", res.Timestamp)
	}
}

func TestResolveTimestampTieKeepsEarlierCandidate(t *testing.T) {
	sp := &testutil.StubProvider{
		PUUIDs:   map[string]string{"name#1234": "p-1"},
		MatchIDs: map[string][]string{"p-1": {"EUW1_10", "EUW1_20", "EUW1_30"}},
		Matches: map[string]matches.Match{
			"EUW1_10": startAt(3000),
			"EUW1_20": startAt(1000),
			"EUW1_30": {},
		},
	}

	res, err := newTestResolver(sp).Resolve(context.Background(), "https://www.op.gg/summoners/euw/name-1234/matches/2000", "")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.MatchID != "EUW1_10" {
		t.Fatalf("expected first candidate on tie, got %s", res.MatchID)
	}
	if got := sp.FetchedMatchIDs(); len(got) != 3 {
		t.Fatalf("expected every candidate fetched, got %v", got)
	}
}

func TestResolveNoUsableStartTime(t *testing.T) {
	sp := &testutil.StubProvider{
		PUUIDs:   map[string]string{"name#1234": "p-1"},
		MatchIDs: map[string][]string{"p-1": {"EUW1_1", "EUW1_2"}},
		Matches:  map[string]matches.Match{"EUW1_1": {}},
	}

	_, err := newTestResolver(sp).Resolve(context.Background(), "https://www.op.gg/summoners/euw/name-1234/matches/99", "")
	if !errors.Is(err, ErrNoMatchingTimestamp) {
		t.Fatalf("expected ErrNoMatchingTimestamp, got %v", err)
	}
}

func TestResolveCandidateTransportErrorPropagates(t *testing.T) {
	sp := &testutil.StubProvider{
		PUUIDs:   map[string]string{"name#1234": "p-1"},
		MatchIDs: map[string][]string{"p-1": {"EUW1_1"}},
		MatchErr: &providers.TransportError{Provider: "stub", Op: "match", Err: context.DeadlineExceeded},
	}

	_, err := newTestResolver(sp).Resolve(context.Background(), "https://www.op.gg/summoners/euw/name-1234/matches/99", "")
	if !providers.IsTransportError(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestResolveFailures(t *testing.T) {
	const url = "https://www.op.gg/summoners/euw/name-1234/matches"
	tests := []struct {
		name  string
		input string
		sp    *testutil.StubProvider
		want  error
	}{
		{name: "unrecognized", input: "definitely not a match", sp: &testutil.StubProvider{}, want: ErrUnrecognizedReference},
		{name: "identity_not_found", input: url, sp: &testutil.StubProvider{}, want: ErrIdentityNotFound},
		{
			name:  "history_missing",
			input: url,
			sp:    &testutil.StubProvider{PUUIDs: map[string]string{"name#1234": "p-1"}},
			want:  ErrNoRecentMatches,
		},
		{
			name:  "history_empty",
			input: url,
			sp: &testutil.StubProvider{
				PUUIDs:   map[string]string{"name#1234": "p-1"},
				MatchIDs: map[string][]string{"p-1": {}},
			},
			want: ErrNoRecentMatches,
		},
		{name: "not_configured", input: url, sp: &testutil.StubProvider{LookupErr: providers.ErrNotConfigured}, want: providers.ErrNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestResolver(tt.sp).Resolve(context.Background(), tt.input, "")
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestResolveDefaultsTagLineAndPlatform(t *testing.T) {
	sp := &testutil.StubProvider{
		PUUIDs:   map[string]string{"Solo#NA1": "p-na"},
		MatchIDs: map[string][]string{"p-na": {"NA1_9"}},
	}

	res, err := newTestResolver(sp).Resolve(context.Background(), "https://site.example/summoners/na/Solo/matches", "")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Platform != "na1" {
		t.Fatalf("expected platform inferred from region segment, got %s", res.Platform)
	}
	lookups := sp.Lookups()
	if len(lookups) != 1 || lookups[0].TagLine != "NA1" || lookups[0].Platform != "na1" {
		t.Fatalf("expected default tag line for na1, got %+v", lookups)
	}
}

func TestResolveExplicitPlatformWins(t *testing.T) {
	res, err := newTestResolver(&testutil.StubProvider{}).Resolve(context.Background(), "EUW1_5", "KR")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if res.Platform != "kr" {
		t.Fatalf("expected explicit platform, got %s", res.Platform)
	}
}

func TestNewAppliesDefaults(t *testing.T) {
	r := New(&testutil.StubProvider{}, Config{MatchCount: 5}, nil)
	if r.matchCount != minMatchCount {
		t.Fatalf("expected match count raised to %d, got %d", minMatchCount, r.matchCount)
	}
	if r.concurrency != defaultConcurrency || r.defaultPlatform != "euw1" || r.routes.Empty() {
		t.Fatalf("unexpected defaults %+v", r)
	}
}
