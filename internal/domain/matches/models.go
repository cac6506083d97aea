// Package matches holds the typed match and timeline documents shared by the
// providers and the stats engine.
package matches

import "strings"

// TeamBlue and TeamRed are the two team identifiers used by the provider.
const (
	TeamBlue = 100
	TeamRed  = 200
)

// Match is the full match detail record.
type Match struct {
	ID               string        `json:"matchId"`
	PlatformID       string        `json:"platformId,omitempty"`
	GameMode         string        `json:"gameMode,omitempty"`
	QueueID          int           `json:"queueId,omitempty"`
	GameVersion      string        `json:"gameVersion,omitempty"`
	DurationSeconds  *int64        `json:"durationSeconds,omitempty"`
	StartTimestampMS *int64        `json:"gameStartTimestamp,omitempty"`
	Participants     []Participant `json:"participants"`
}

// Participant is one player's row in a match. Index is 0-based within Match.Participants.
type Participant struct {
	PUUID              string   `json:"puuid"`
	GameName           string   `json:"riotIdGameName,omitempty"`
	TagLine            string   `json:"riotIdTagline,omitempty"`
	SummonerName       string   `json:"summonerName,omitempty"`
	ChampionName       string   `json:"championName"`
	TeamID             int      `json:"teamId"`
	TeamPosition       string   `json:"teamPosition,omitempty"`
	IndividualPosition string   `json:"individualPosition,omitempty"`
	Lane               string   `json:"lane,omitempty"`
	Win                bool     `json:"win"`
	Kills              int      `json:"kills"`
	Deaths             int      `json:"deaths"`
	Assists            int      `json:"assists"`
	MinionsKilled      int      `json:"totalMinionsKilled"`
	NeutralMinions     int      `json:"neutralMinionsKilled"`
	GoldEarned         int      `json:"goldEarned"`
	ChampionDamage     int      `json:"totalDamageDealtToChampions"`
	VisionScore        int      `json:"visionScore"`
	TimePlayedSeconds  *int64   `json:"timePlayed,omitempty"`
	PrecomputedKDA     *float64 `json:"kda,omitempty"`
}

// LaneDesignation returns the positional role used to pair lane opponents.
// An empty string means the participant has no usable designation.
func (p Participant) LaneDesignation() string {
	for _, v := range []string{p.TeamPosition, p.IndividualPosition, p.Lane} {
		v = strings.ToUpper(strings.TrimSpace(v))
		if v != "" && v != "INVALID" && v != "NONE" {
			return v
		}
	}
	return ""
}

// DisplayName returns the Riot ID game name, or the legacy summoner name.
func (p Participant) DisplayName() string {
	if p.GameName != "" {
		return p.GameName
	}
	return p.SummonerName
}

// CreepScore is lane minions plus neutral monsters.
func (p Participant) CreepScore() int {
	return p.MinionsKilled + p.NeutralMinions
}

// IndexOfPUUID returns the 0-based participant index for a PUUID.
func (m Match) IndexOfPUUID(puuid string) (int, bool) {
	if puuid == "" {
		return 0, false
	}
	for i, p := range m.Participants {
		if p.PUUID == puuid {
			return i, true
		}
	}
	return 0, false
}

// Participant returns the participant at index when in range.
func (m Match) Participant(index int) (Participant, bool) {
	if index < 0 || index >= len(m.Participants) {
		return Participant{}, false
	}
	return m.Participants[index], true
}
