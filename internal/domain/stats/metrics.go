package stats

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/timeutil"
)

// ErrParticipantOutOfRange is returned when the target index does not address a participant.
var ErrParticipantOutOfRange = errors.New("participant index out of range")

// ComputeMetrics derives aggregate statistics for the participant at targetIndex.
func ComputeMetrics(match matches.Match, targetIndex int) (PlayerMetrics, error) {
	p, ok := match.Participant(targetIndex)
	if !ok {
		return PlayerMetrics{}, fmt.Errorf("%w: %d of %d", ErrParticipantOutOfRange, targetIndex, len(match.Participants))
	}

	out := PlayerMetrics{
		Index:       targetIndex,
		PUUID:       p.PUUID,
		Name:        p.DisplayName(),
		Champion:    p.ChampionName,
		Lane:        p.LaneDesignation(),
		TeamID:      p.TeamID,
		Win:         p.Win,
		Kills:       p.Kills,
		Deaths:      p.Deaths,
		Assists:     p.Assists,
		KDA:         kdaRatio(p),
		CreepScore:  p.CreepScore(),
		GoldEarned:  p.GoldEarned,
		VisionScore: p.VisionScore,
	}

	if minutes, ok := durationMinutes(match, p); ok {
		out.DurationMinutes = ptr(round(minutes, 2))
		out.CSPerMin = ptr(round(float64(out.CreepScore)/minutes, 2))
		out.GoldPerMin = ptr(round(float64(p.GoldEarned)/minutes, 2))
		out.VisionPerMin = ptr(round(float64(p.VisionScore)/minutes, 2))
	}

	teamKills, teamDamage := teamTotals(match, p.TeamID)
	if teamKills > 0 {
		out.KillParticipationPct = ptr(round(100*float64(p.Kills+p.Assists)/float64(teamKills), 1))
	}
	if teamDamage > 0 {
		out.TeamDamageSharePct = ptr(round(100*float64(p.ChampionDamage)/float64(teamDamage), 1))
	}

	if idx, ok := LaneOpponent(match, targetIndex); ok {
		opp := match.Participants[idx]
		out.Opponent = &OpponentRef{
			Index:    idx,
			PUUID:    opp.PUUID,
			Name:     opp.DisplayName(),
			Champion: opp.ChampionName,
			Lane:     opp.LaneDesignation(),
		}
	}

	return out, nil
}

// LaneOpponent returns the first enemy participant sharing the target's lane designation.
func LaneOpponent(match matches.Match, targetIndex int) (int, bool) {
	p, ok := match.Participant(targetIndex)
	if !ok {
		return 0, false
	}
	lane := p.LaneDesignation()
	if lane == "" {
		return 0, false
	}
	for i, other := range match.Participants {
		if i == targetIndex || other.TeamID == p.TeamID {
			continue
		}
		if other.LaneDesignation() == lane {
			return i, true
		}
	}
	return 0, false
}

func kdaRatio(p matches.Participant) float64 {
	if p.PrecomputedKDA != nil {
		return round(*p.PrecomputedKDA, 2)
	}
	deaths := p.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return round(float64(p.Kills+p.Assists)/float64(deaths), 2)
}

func durationMinutes(match matches.Match, p matches.Participant) (float64, bool) {
	if match.DurationSeconds != nil && *match.DurationSeconds > 0 {
		return timeutil.Minutes(*match.DurationSeconds), true
	}
	if p.TimePlayedSeconds != nil && *p.TimePlayedSeconds > 0 {
		return timeutil.Minutes(*p.TimePlayedSeconds), true
	}
	return 0, false
}

func teamTotals(match matches.Match, teamID int) (kills, damage int) {
	for _, p := range match.Participants {
		if p.TeamID != teamID {
			continue
		}
		kills += p.Kills
		damage += p.ChampionDamage
	}
	return kills, damage
}
