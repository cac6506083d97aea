package stats

import (
	"strings"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
)

// Selector describes who the caller wants analyzed. Empty fields are ignored.
type Selector struct {
	PUUID       string
	DisplayName string
}

// SelectTarget picks the participant to analyze: PUUID match first, then a
// case-insensitive display-name match, then the first winner, then index 0.
func SelectTarget(match matches.Match, sel Selector) int {
	if idx, ok := match.IndexOfPUUID(sel.PUUID); ok {
		return idx
	}
	if name := strings.TrimSpace(sel.DisplayName); name != "" {
		for i, p := range match.Participants {
			if matchesName(p, name) {
				return i
			}
		}
	}
	for i, p := range match.Participants {
		if p.Win {
			return i
		}
	}
	return 0
}

func matchesName(p matches.Participant, name string) bool {
	if strings.EqualFold(p.GameName, name) || strings.EqualFold(p.SummonerName, name) {
		return true
	}
	if p.GameName != "" && p.TagLine != "" {
		return strings.EqualFold(p.GameName+"#"+p.TagLine, name)
	}
	return false
}
