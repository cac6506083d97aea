package riot

import (
	"sort"
	"strconv"

	"github.com/preston-bernstein/lol-match-coach/internal/domain/matches"
)

func mapMatch(resp matchResponse) matches.Match {
	info := resp.Info
	m := matches.Match{
		ID:               resp.Metadata.MatchID,
		PlatformID:       info.PlatformID,
		GameMode:         info.GameMode,
		QueueID:          info.QueueID,
		GameVersion:      info.GameVersion,
		DurationSeconds:  durationSeconds(info),
		StartTimestampMS: startTimestamp(info),
		Participants:     make([]matches.Participant, 0, len(info.Participants)),
	}
	for _, p := range info.Participants {
		m.Participants = append(m.Participants, mapParticipant(p))
	}
	return m
}

// durationSeconds normalizes gameDuration, which older records report in
// milliseconds. Those records carry no gameEndTimestamp.
func durationSeconds(info matchInfo) *int64 {
	if info.GameDuration == nil {
		return nil
	}
	d := *info.GameDuration
	if info.GameEndTimestamp == nil {
		d /= 1000
	}
	return &d
}

func startTimestamp(info matchInfo) *int64 {
	if info.GameStartTimestamp != nil {
		return info.GameStartTimestamp
	}
	return info.GameCreation
}

func mapParticipant(p participantResponse) matches.Participant {
	out := matches.Participant{
		PUUID:              p.PUUID,
		GameName:           p.RiotIDGameName,
		TagLine:            p.RiotIDTagline,
		SummonerName:       p.SummonerName,
		ChampionName:       p.ChampionName,
		TeamID:             p.TeamID,
		TeamPosition:       p.TeamPosition,
		IndividualPosition: p.IndividualPosition,
		Lane:               p.Lane,
		Win:                p.Win,
		Kills:              p.Kills,
		Deaths:             p.Deaths,
		Assists:            p.Assists,
		MinionsKilled:      p.TotalMinionsKilled,
		NeutralMinions:     p.NeutralMinionsKilled,
		GoldEarned:         p.GoldEarned,
		ChampionDamage:     p.TotalDamageDealtToChampions,
		VisionScore:        p.VisionScore,
		TimePlayedSeconds:  p.TimePlayed,
	}
	if p.Challenges != nil {
		out.PrecomputedKDA = p.Challenges.KDA
	}
	return out
}

func mapTimeline(resp timelineResponse) matches.Timeline {
	tl := matches.Timeline{
		MatchID:           resp.Metadata.MatchID,
		ParticipantPUUIDs: resp.Metadata.Participants,
		FrameIntervalMS:   resp.Info.FrameInterval,
		Frames:            make([]matches.Frame, 0, len(resp.Info.Frames)),
	}
	for _, f := range resp.Info.Frames {
		tl.Frames = append(tl.Frames, mapFrame(f))
	}
	sort.SliceStable(tl.Frames, func(i, j int) bool {
		return tl.Frames[i].TimestampMS < tl.Frames[j].TimestampMS
	})
	return tl
}

func mapFrame(f frameResponse) matches.Frame {
	frame := matches.Frame{
		TimestampMS:  f.Timestamp,
		Participants: make(map[int]matches.ParticipantFrame, len(f.ParticipantFrames)),
		Events:       make([]matches.Event, 0, len(f.Events)),
	}
	for key, pf := range f.ParticipantFrames {
		id := pf.ParticipantID
		if parsed, err := strconv.Atoi(key); err == nil {
			id = parsed
		}
		if id <= 0 {
			continue
		}
		frame.Participants[id] = matches.ParticipantFrame{
			ParticipantID:       id,
			MinionsKilled:       pf.MinionsKilled,
			JungleMinionsKilled: pf.JungleMinionsKilled,
			TotalGold:           pf.TotalGold,
			CurrentGold:         pf.CurrentGold,
			Level:               pf.Level,
			XP:                  pf.XP,
		}
	}
	for _, e := range f.Events {
		frame.Events = append(frame.Events, matches.Event{
			Type:           e.Type,
			TimestampMS:    e.Timestamp,
			KillerID:       e.KillerID,
			VictimID:       e.VictimID,
			AssistingIDs:   e.AssistingParticipantIDs,
			KillerTeamID:   e.KillerTeamID,
			TeamID:         e.TeamID,
			MonsterType:    e.MonsterType,
			MonsterSubType: e.MonsterSubType,
			BuildingType:   e.BuildingType,
			TowerType:      e.TowerType,
			LaneType:       e.LaneType,
		})
	}
	return frame
}
