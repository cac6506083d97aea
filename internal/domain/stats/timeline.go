package stats

import (
	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
	"github.com/preston-bernstein/lol-match-coach/internal/timeutil"
)

const (
	earlyMark = 10
	midMark   = 20
)

// Summarize reduces the timeline into phase snapshots and an event log for the
// participant at targetIndex. opponentIndex is optional; gold differentials stay
// nil without it. The result has Available=false when the target is not in the
// timeline's participant list.
func Summarize(match matches.Match, timeline matches.Timeline, targetIndex int, opponentIndex *int) TimelineSummary {
	target, ok := match.Participant(targetIndex)
	if !ok {
		return TimelineSummary{}
	}
	targetID, ok := timeline.TimelineIDForPUUID(target.PUUID)
	if !ok {
		return TimelineSummary{}
	}

	opponentID, hasOpponent := 0, false
	if opponentIndex != nil {
		if opp, ok := match.Participant(*opponentIndex); ok {
			opponentID, hasOpponent = timeline.TimelineIDForPUUID(opp.PUUID)
		}
	}

	out := TimelineSummary{
		Available: true,
		KillsAt:   []float64{},
		DeathsAt:  []float64{},
		Dragons:   []ObjectiveEvent{},
		Heralds:   []ObjectiveEvent{},
		Barons:    []ObjectiveEvent{},
		Plates:    []StructureEvent{},
		Towers:    []StructureEvent{},
	}

	cs10, ok10 := frameAt(timeline.Frames, targetID, earlyMark)
	cs20, ok20 := frameAt(timeline.Frames, targetID, midMark)
	if ok10 {
		out.CSAt10 = ptr(cs10.CreepScore())
		out.CSPerMin0To10 = ptr(round(float64(cs10.CreepScore())/earlyMark, 2))
	}
	if ok20 {
		out.CSAt20 = ptr(cs20.CreepScore())
	}
	if ok10 && ok20 {
		out.CSPerMin10To20 = ptr(round(float64(cs20.CreepScore()-cs10.CreepScore())/(midMark-earlyMark), 2))
	}

	if hasOpponent {
		out.GoldDiffAt10 = goldDiffAt(timeline.Frames, targetID, opponentID, earlyMark)
		out.GoldDiffAt20 = goldDiffAt(timeline.Frames, targetID, opponentID, midMark)
	}

	reduceEvents(&out, timeline.Frames, targetID)
	return out
}

// frameAt returns the snapshot for participant id from the frame closest to the
// minute mark, considering only frames that carry that participant. The earliest
// frame wins ties.
func frameAt(frames []matches.Frame, id int, minute int) (matches.ParticipantFrame, bool) {
	mark := timeutil.MinuteMarkMS(minute)
	var (
		best     matches.ParticipantFrame
		bestDiff int64
		found    bool
	)
	for _, f := range frames {
		snap, ok := f.Participants[id]
		if !ok {
			continue
		}
		diff := timeutil.AbsDiffMS(f.TimestampMS, mark)
		if !found || diff < bestDiff {
			best, bestDiff, found = snap, diff, true
		}
	}
	return best, found
}

func goldDiffAt(frames []matches.Frame, targetID, opponentID, minute int) *int {
	own, ok := frameAt(frames, targetID, minute)
	if !ok {
		return nil
	}
	opp, ok := frameAt(frames, opponentID, minute)
	if !ok {
		return nil
	}
	return ptr(own.TotalGold - opp.TotalGold)
}

func reduceEvents(out *TimelineSummary, frames []matches.Frame, targetID int) {
	for _, f := range frames {
		for _, ev := range f.Events {
			minute := timeutil.MinuteStamp(ev.TimestampMS)
			switch ev.Type {
			case matches.EventChampionKill:
				if isID(ev.KillerID, targetID) {
					out.KillsAt = append(out.KillsAt, minute)
				}
				if isID(ev.VictimID, targetID) {
					out.DeathsAt = append(out.DeathsAt, minute)
				}
				for _, a := range ev.AssistingIDs {
					if a == targetID {
						out.Assists++
						break
					}
				}
			case matches.EventEliteMonster:
				obj := ObjectiveEvent{Minute: minute, TeamID: ev.KillerTeamID, SubType: ev.MonsterSubType}
				switch ev.MonsterType {
				case matches.MonsterDragon:
					out.Dragons = append(out.Dragons, obj)
				case matches.MonsterRiftHerald:
					out.Heralds = append(out.Heralds, obj)
				case matches.MonsterBaron:
					out.Barons = append(out.Barons, obj)
				}
			case matches.EventTurretPlate:
				out.Plates = append(out.Plates, StructureEvent{Minute: minute, Lane: ev.LaneType})
			case matches.EventBuildingKill:
				if ev.BuildingType != matches.BuildingTower {
					continue
				}
				out.Towers = append(out.Towers, StructureEvent{
					Minute:    minute,
					Lane:      ev.LaneType,
					TeamID:    ev.TeamID,
					TowerType: ev.TowerType,
				})
			}
		}
	}
}

func isID(v *int, id int) bool {
	return v != nil && *v == id
}
