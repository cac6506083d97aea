package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/lol-match-coach/internal/providers"
)

func TestFixtureMatchIsDeterministic(t *testing.T) {
	p := New()

	m, err := p.FetchMatch(context.Background(), MatchID, "euw1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(m.Participants) != 10 {
		t.Fatalf("expected 10 participants, got %d", len(m.Participants))
	}
	if m.DurationSeconds == nil || *m.DurationSeconds != 1800 {
		t.Fatalf("unexpected duration %v", m.DurationSeconds)
	}
	mid := m.Participants[2]
	if mid.GameName != "MidLaner" || mid.LaneDesignation() != "MIDDLE" || !mid.Win {
		t.Fatalf("unexpected mid laner %+v", mid)
	}
	if m.Participants[7].TeamID == mid.TeamID {
		t.Fatalf("expected red mid on the other team")
	}
}

func TestFixtureTimelineFrames(t *testing.T) {
	tl := Timeline()
	if len(tl.Frames) != 31 {
		t.Fatalf("expected 31 frames, got %d", len(tl.Frames))
	}
	if id, ok := tl.TimelineIDForPUUID(PUUID(2)); !ok || id != 3 {
		t.Fatalf("expected mid laner timeline id 3, got %d", id)
	}
	if cs := tl.Frames[10].Participants[3].CreepScore(); cs != 80 {
		t.Fatalf("expected 80 cs at 10, got %d", cs)
	}

	events := 0
	for _, f := range tl.Frames {
		for _, e := range f.Events {
			if e.TimestampMS > f.TimestampMS {
				t.Fatalf("event at %d placed in earlier frame %d", e.TimestampMS, f.TimestampMS)
			}
			events++
		}
	}
	if events != len(timelineEvents()) {
		t.Fatalf("expected all events placed, got %d", events)
	}
}

func TestFixtureLookupAndListing(t *testing.T) {
	p := New()
	ctx := context.Background()

	puuid, err := p.LookupPUUID(ctx, "midlaner", "euw", "euw1")
	if err != nil || puuid != PUUID(2) {
		t.Fatalf("expected mid laner puuid, got %q (%v)", puuid, err)
	}
	if _, err := p.LookupPUUID(ctx, "Stranger", "EUW", "euw1"); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected not found for unknown player, got %v", err)
	}

	ids, err := p.ListRecentMatchIDs(ctx, puuid, 20, "euw1")
	if err != nil || len(ids) != 1 || ids[0] != MatchID {
		t.Fatalf("unexpected ids %v (%v)", ids, err)
	}
	if ids, _ := p.ListRecentMatchIDs(ctx, "unknown", 20, "euw1"); len(ids) != 0 {
		t.Fatalf("expected no matches for unknown puuid, got %v", ids)
	}
}

func TestFixtureUnknownMatch(t *testing.T) {
	p := New()
	if _, err := p.FetchMatch(context.Background(), "EUW1_1", "euw1"); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := p.FetchTimeline(context.Background(), "EUW1_1", "euw1"); !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFixtureRespectsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().FetchMatch(ctx, MatchID, "euw1"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
}

func TestFixtureImplementsMatchProvider(t *testing.T) {
	var _ providers.MatchProvider = New()
}
