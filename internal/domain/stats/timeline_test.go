package stats

import (
	"testing"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
)

func intp(v int) *int { return &v }

// timelineFor lists participants in match order so index+1 is the timeline id.
func timelineFor(m matches.Match, frames ...matches.Frame) matches.Timeline {
	tl := matches.Timeline{MatchID: m.ID, Frames: frames}
	for _, p := range m.Participants {
		tl.ParticipantPUUIDs = append(tl.ParticipantPUUIDs, p.PUUID)
	}
	return tl
}

func frame(ts int64, snaps map[int]matches.ParticipantFrame, events ...matches.Event) matches.Frame {
	return matches.Frame{TimestampMS: ts, Participants: snaps, Events: events}
}

func TestSummarizePhaseSnapshotsAndGoldDiff(t *testing.T) {
	m := laneMatch()
	opp := 7
	tl := timelineFor(m,
		frame(0, map[int]matches.ParticipantFrame{3: {}, 8: {}}),
		frame(600_450, map[int]matches.ParticipantFrame{
			3: {MinionsKilled: 72, JungleMinionsKilled: 8, TotalGold: 4200},
			8: {MinionsKilled: 65, TotalGold: 3900},
		}),
		frame(1_200_900, map[int]matches.ParticipantFrame{
			3: {MinionsKilled: 130, JungleMinionsKilled: 10, TotalGold: 8100},
			8: {MinionsKilled: 120, TotalGold: 8500},
		}),
	)

	got := Summarize(m, tl, 2, &opp)
	if !got.Available {
		t.Fatalf("expected summary to be available")
	}
	if got.CSAt10 == nil || *got.CSAt10 != 80 {
		t.Fatalf("expected cs@10 80, got %v", got.CSAt10)
	}
	if got.CSAt20 == nil || *got.CSAt20 != 140 {
		t.Fatalf("expected cs@20 140, got %v", got.CSAt20)
	}
	if got.CSPerMin0To10 == nil || *got.CSPerMin0To10 != 8 {
		t.Fatalf("expected cs/min 0-10 of 8, got %v", got.CSPerMin0To10)
	}
	if got.CSPerMin10To20 == nil || *got.CSPerMin10To20 != 6.0 {
		t.Fatalf("expected cs/min 10-20 of 6.0, got %v", got.CSPerMin10To20)
	}
	if got.GoldDiffAt10 == nil || *got.GoldDiffAt10 != 300 {
		t.Fatalf("expected gold diff @10 of 300, got %v", got.GoldDiffAt10)
	}
	if got.GoldDiffAt20 == nil || *got.GoldDiffAt20 != -400 {
		t.Fatalf("expected gold diff @20 of -400, got %v", got.GoldDiffAt20)
	}
}

func TestSummarizeWithoutOpponentLeavesGoldDiffNil(t *testing.T) {
	m := laneMatch()
	tl := timelineFor(m, frame(600_000, map[int]matches.ParticipantFrame{3: {MinionsKilled: 50}}))

	got := Summarize(m, tl, 2, nil)
	if got.GoldDiffAt10 != nil || got.GoldDiffAt20 != nil {
		t.Fatalf("expected nil gold diffs without opponent")
	}
	if got.CSAt10 == nil || *got.CSAt10 != 50 {
		t.Fatalf("expected cs@10 50, got %v", got.CSAt10)
	}
}

func TestSummarizeOpponentMissingFromFramesLeavesGoldDiffNil(t *testing.T) {
	m := laneMatch()
	opp := 7
	tl := timelineFor(m, frame(600_000, map[int]matches.ParticipantFrame{3: {TotalGold: 4000}}))
	got := Summarize(m, tl, 2, &opp)
	if got.GoldDiffAt10 != nil {
		t.Fatalf("expected nil gold diff when opponent has no snapshot, got %d", *got.GoldDiffAt10)
	}
}

func TestSummarizeTargetAbsentFromTimelineReturnsEmpty(t *testing.T) {
	m := laneMatch()
	tl := timelineFor(m)
	tl.ParticipantPUUIDs[2] = "someone-else"

	got := Summarize(m, tl, 2, nil)
	if got.Available {
		t.Fatalf("expected empty summary")
	}
	if got.CSAt10 != nil || got.KillsAt != nil {
		t.Fatalf("expected zero-valued summary, got %+v", got)
	}
}

func TestFrameAtPrefersClosestAndEarliestOnTie(t *testing.T) {
	frames := []matches.Frame{
		frame(540_000, map[int]matches.ParticipantFrame{1: {MinionsKilled: 1}}),
		frame(660_000, map[int]matches.ParticipantFrame{1: {MinionsKilled: 2}}),
		frame(601_000, map[int]matches.ParticipantFrame{2: {MinionsKilled: 3}}),
	}
	got, ok := frameAt(frames, 1, 10)
	if !ok || got.MinionsKilled != 1 {
		t.Fatalf("expected earliest frame on tie, got %+v %v", got, ok)
	}
	got, ok = frameAt(frames, 2, 10)
	if !ok || got.MinionsKilled != 3 {
		t.Fatalf("expected only frame carrying participant 2, got %+v %v", got, ok)
	}
	if _, ok := frameAt(frames, 9, 10); ok {
		t.Fatalf("expected miss for participant without snapshots")
	}
}

func TestSummarizeReducesEvents(t *testing.T) {
	m := laneMatch()
	blue, red := matches.TeamBlue, matches.TeamRed
	tl := timelineFor(m,
		frame(0, map[int]matches.ParticipantFrame{3: {}}),
		frame(300_000, map[int]matches.ParticipantFrame{3: {}},
			matches.Event{Type: matches.EventChampionKill, TimestampMS: 245_000, KillerID: intp(3), VictimID: intp(8)},
			matches.Event{Type: matches.EventChampionKill, TimestampMS: 280_000, KillerID: intp(8), VictimID: intp(3)},
			matches.Event{Type: matches.EventChampionKill, TimestampMS: 290_000, KillerID: intp(2), VictimID: intp(9), AssistingIDs: []int{1, 3}},
			matches.Event{Type: matches.EventChampionKill, TimestampMS: 295_000, KillerID: intp(6), VictimID: intp(1), AssistingIDs: []int{7}},
		),
		frame(900_000, map[int]matches.ParticipantFrame{3: {}},
			matches.Event{Type: matches.EventEliteMonster, TimestampMS: 400_000, MonsterType: matches.MonsterDragon, MonsterSubType: "FIRE_DRAGON", KillerTeamID: &red},
			matches.Event{Type: matches.EventEliteMonster, TimestampMS: 500_000, MonsterType: matches.MonsterRiftHerald, KillerTeamID: &blue},
			matches.Event{Type: matches.EventEliteMonster, TimestampMS: 510_000, MonsterType: "HORDE", KillerTeamID: &blue},
			matches.Event{Type: matches.EventTurretPlate, TimestampMS: 540_000, LaneType: "MID_LANE", TeamID: &red},
			matches.Event{Type: matches.EventBuildingKill, TimestampMS: 780_000, BuildingType: matches.BuildingTower, TowerType: "OUTER_TURRET", LaneType: "MID_LANE", TeamID: &red},
			matches.Event{Type: matches.EventBuildingKill, TimestampMS: 790_000, BuildingType: "INHIBITOR_BUILDING", LaneType: "MID_LANE", TeamID: &red},
		),
		frame(1_500_000, map[int]matches.ParticipantFrame{3: {}},
			matches.Event{Type: matches.EventEliteMonster, TimestampMS: 1_460_000, MonsterType: matches.MonsterBaron, KillerTeamID: &red},
		),
	)

	got := Summarize(m, tl, 2, nil)

	if len(got.KillsAt) != 1 || got.KillsAt[0] != 4.1 {
		t.Fatalf("unexpected kills %v", got.KillsAt)
	}
	if len(got.DeathsAt) != 1 || got.DeathsAt[0] != 4.7 {
		t.Fatalf("unexpected deaths %v", got.DeathsAt)
	}
	if got.Assists != 1 {
		t.Fatalf("expected 1 assist, got %d", got.Assists)
	}
	if len(got.Dragons) != 1 || got.Dragons[0].SubType != "FIRE_DRAGON" || *got.Dragons[0].TeamID != red {
		t.Fatalf("unexpected dragons %+v", got.Dragons)
	}
	if len(got.Heralds) != 1 || *got.Heralds[0].TeamID != blue {
		t.Fatalf("unexpected heralds %+v", got.Heralds)
	}
	if len(got.Barons) != 1 || got.Barons[0].Minute != 24.3 {
		t.Fatalf("unexpected barons %+v", got.Barons)
	}
	if len(got.Plates) != 1 || got.Plates[0].Lane != "MID_LANE" || got.Plates[0].TeamID != nil {
		t.Fatalf("expected unattributed plate, got %+v", got.Plates)
	}
	if len(got.Towers) != 1 || got.Towers[0].TowerType != "OUTER_TURRET" || *got.Towers[0].TeamID != red || got.Towers[0].Minute != 13 {
		t.Fatalf("unexpected towers %+v", got.Towers)
	}
}
