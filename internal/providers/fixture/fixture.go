// Package fixture serves one deterministic match for local runs and tests
// without a Riot API key.
package fixture

import (
	"context"
	"fmt"
	"strings"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/domain/routing"
	"github.com/preston-bernstein/lol-match-coach/internal/providers"
)

const (
	// MatchID is the only match the fixture knows about.
	MatchID = "EUW1_1234567890"
	// TagLine is shared by every fixture account.
	TagLine = "EUW"

	providerName    = "fixture"
	durationSeconds = int64(1800)
	startMS         = int64(1700000000000)
	frameMS         = int64(60000)
)

// seat describes one participant; csPerMin and goldPerMin drive the timeline frames.
type seat struct {
	name       string
	champion   string
	position   string
	kills      int
	deaths     int
	assists    int
	minions    int
	neutral    int
	gold       int
	damage     int
	vision     int
	csPerMin   int
	goldPerMin int
}

var seats = []seat{
	{"TopMain", "Garen", "TOP", 4, 3, 6, 190, 8, 12100, 18000, 15, 6, 390},
	{"JungleMain", "LeeSin", "JUNGLE", 5, 4, 12, 40, 150, 11800, 12000, 30, 0, 380},
	{"MidLaner", "Ahri", "MIDDLE", 8, 2, 10, 210, 15, 13500, 30000, 24, 8, 420},
	{"BotCarry", "Jinx", "BOTTOM", 9, 3, 7, 230, 10, 14200, 28000, 18, 8, 430},
	{"SupportMain", "Thresh", "UTILITY", 1, 5, 20, 30, 0, 8200, 7000, 70, 1, 250},
	{"RedTop", "Darius", "TOP", 3, 4, 4, 175, 6, 10900, 17000, 12, 6, 360},
	{"RedJungle", "Vi", "JUNGLE", 2, 6, 6, 35, 130, 9800, 9000, 25, 0, 330},
	{"RedMid", "Zed", "MIDDLE", 4, 8, 3, 185, 8, 10400, 19000, 14, 7, 380},
	{"RedBot", "Caitlyn", "BOTTOM", 5, 6, 4, 220, 4, 11200, 21000, 16, 8, 390},
	{"RedSupport", "Lulu", "UTILITY", 1, 4, 9, 25, 0, 7100, 6000, 55, 1, 230},
}

// Provider serves the fixture match through the MatchProvider contract.
type Provider struct {
	match    matches.Match
	timeline matches.Timeline
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{match: Match(), timeline: Timeline()}
}

func (p *Provider) Name() string {
	return providerName
}

// LookupPUUID matches fixture game names case-insensitively.
func (p *Provider) LookupPUUID(ctx context.Context, gameName, tagLine string, platform routing.Platform) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	for _, part := range p.match.Participants {
		if strings.EqualFold(part.GameName, strings.TrimSpace(gameName)) &&
			(tagLine == "" || strings.EqualFold(part.TagLine, strings.TrimSpace(tagLine))) {
			return part.PUUID, nil
		}
	}
	return "", fmt.Errorf("fixture: no account %s#%s: %w", gameName, tagLine, providers.ErrNotFound)
}

// ListRecentMatchIDs returns the fixture match for any fixture player.
func (p *Provider) ListRecentMatchIDs(ctx context.Context, puuid string, count int, platform routing.Platform) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := p.match.IndexOfPUUID(puuid); !ok || count <= 0 {
		return []string{}, nil
	}
	return []string{MatchID}, nil
}

func (p *Provider) FetchMatch(ctx context.Context, matchID string, platform routing.Platform) (matches.Match, error) {
	if err := ctx.Err(); err != nil {
		return matches.Match{}, err
	}
	if !strings.EqualFold(matchID, MatchID) {
		return matches.Match{}, fmt.Errorf("fixture: match %s: %w", matchID, providers.ErrNotFound)
	}
	return p.match, nil
}

func (p *Provider) FetchTimeline(ctx context.Context, matchID string, platform routing.Platform) (matches.Timeline, error) {
	if err := ctx.Err(); err != nil {
		return matches.Timeline{}, err
	}
	if !strings.EqualFold(matchID, MatchID) {
		return matches.Timeline{}, fmt.Errorf("fixture: timeline %s: %w", matchID, providers.ErrNotFound)
	}
	return p.timeline, nil
}

// PUUID returns the fixture PUUID for a 0-based participant index.
func PUUID(index int) string {
	return fmt.Sprintf("fixture-puuid-%d", index+1)
}

// Match builds the fixture match: blue side wins a 30 minute game.
func Match() matches.Match {
	duration := durationSeconds
	start := startMS
	m := matches.Match{
		ID:               MatchID,
		PlatformID:       "EUW1",
		GameMode:         "CLASSIC",
		QueueID:          420,
		GameVersion:      "14.1.1",
		DurationSeconds:  &duration,
		StartTimestampMS: &start,
		Participants:     make([]matches.Participant, 0, len(seats)),
	}
	for i, s := range seats {
		team := matches.TeamBlue
		if i >= 5 {
			team = matches.TeamRed
		}
		m.Participants = append(m.Participants, matches.Participant{
			PUUID:          PUUID(i),
			GameName:       s.name,
			TagLine:        TagLine,
			ChampionName:   s.champion,
			TeamID:         team,
			TeamPosition:   s.position,
			Win:            team == matches.TeamBlue,
			Kills:          s.kills,
			Deaths:         s.deaths,
			Assists:        s.assists,
			MinionsKilled:  s.minions,
			NeutralMinions: s.neutral,
			GoldEarned:     s.gold,
			ChampionDamage: s.damage,
			VisionScore:    s.vision,
		})
	}
	return m
}

// Timeline builds one frame per minute with linear cs and gold growth and a
// handful of kills and objectives.
func Timeline() matches.Timeline {
	tl := matches.Timeline{
		MatchID:           MatchID,
		ParticipantPUUIDs: make([]string, len(seats)),
		FrameIntervalMS:   frameMS,
	}
	for i := range seats {
		tl.ParticipantPUUIDs[i] = PUUID(i)
	}

	minutes := int(durationSeconds / 60)
	for m := 0; m <= minutes; m++ {
		frame := matches.Frame{
			TimestampMS:  int64(m) * frameMS,
			Participants: make(map[int]matches.ParticipantFrame, len(seats)),
			Events:       []matches.Event{},
		}
		for i, s := range seats {
			id := i + 1
			pf := matches.ParticipantFrame{
				ParticipantID: id,
				MinionsKilled: s.csPerMin * m,
				TotalGold:     500 + s.goldPerMin*m,
				Level:         min(18, 1+m/2),
			}
			if s.position == "JUNGLE" {
				pf.JungleMinionsKilled = 5 * m
			}
			frame.Participants[id] = pf
		}
		tl.Frames = append(tl.Frames, frame)
	}

	for _, e := range timelineEvents() {
		idx := int((e.TimestampMS + frameMS - 1) / frameMS)
		if idx >= len(tl.Frames) {
			idx = len(tl.Frames) - 1
		}
		tl.Frames[idx].Events = append(tl.Frames[idx].Events, e)
	}
	return tl
}

func timelineEvents() []matches.Event {
	id := func(v int) *int { return &v }
	return []matches.Event{
		{Type: matches.EventTurretPlate, TimestampMS: 300000, LaneType: "MID_LANE", TeamID: id(matches.TeamRed)},
		{Type: matches.EventChampionKill, TimestampMS: 390000, KillerID: id(3), VictimID: id(8)},
		{Type: matches.EventEliteMonster, TimestampMS: 480000, KillerTeamID: id(matches.TeamBlue), MonsterType: matches.MonsterDragon, MonsterSubType: "FIRE_DRAGON"},
		{Type: matches.EventChampionKill, TimestampMS: 660000, KillerID: id(8), VictimID: id(3)},
		{Type: matches.EventBuildingKill, TimestampMS: 750000, BuildingType: matches.BuildingTower, TowerType: "OUTER_TURRET", LaneType: "MID_LANE", TeamID: id(matches.TeamRed)},
		{Type: matches.EventEliteMonster, TimestampMS: 840000, KillerTeamID: id(matches.TeamRed), MonsterType: matches.MonsterRiftHerald},
		{Type: matches.EventChampionKill, TimestampMS: 900000, KillerID: id(4), VictimID: id(9), AssistingIDs: []int{3, 5}},
		{Type: matches.EventEliteMonster, TimestampMS: 1500000, KillerTeamID: id(matches.TeamBlue), MonsterType: matches.MonsterBaron},
	}
}
