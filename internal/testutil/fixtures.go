package testutil

import (
	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/providers/fixture"
)

// SampleMatchID is the id of SampleMatch.
const SampleMatchID = fixture.MatchID

// SampleMatch returns the deterministic fixture match.
func SampleMatch() matches.Match {
	return fixture.Match()
}

// SampleTimeline returns the timeline paired with SampleMatch.
func SampleTimeline() matches.Timeline {
	return fixture.Timeline()
}

// SampleProvider returns a StubProvider preloaded with the sample match and its players.
func SampleProvider() *StubProvider {
	m := SampleMatch()
	sp := &StubProvider{
		PUUIDs:    make(map[string]string, len(m.Participants)),
		MatchIDs:  make(map[string][]string, len(m.Participants)),
		Matches:   map[string]matches.Match{m.ID: m},
		Timelines: map[string]matches.Timeline{m.ID: SampleTimeline()},
	}
	for _, p := range m.Participants {
		sp.PUUIDs[p.GameName+"#"+p.TagLine] = p.PUUID
		sp.MatchIDs[p.PUUID] = []string{m.ID}
	}
	return sp
}
