package matches

// Event type names emitted by the provider timeline.
const (
	EventChampionKill = "CHAMPION_KILL"
	EventEliteMonster = "ELITE_MONSTER_KILL"
	EventBuildingKill = "BUILDING_KILL"
	EventTurretPlate  = "TURRET_PLATE_DESTROYED"
	MonsterDragon     = "DRAGON"
	MonsterRiftHerald = "RIFTHERALD"
	MonsterBaron      = "BARON_NASHOR"
	BuildingTower     = "TOWER_BUILDING"
)

// Timeline is the frame/event stream for a match.
// ParticipantPUUIDs is ordered so position+1 is the timeline participant id.
type Timeline struct {
	MatchID           string   `json:"matchId"`
	ParticipantPUUIDs []string `json:"participants"`
	FrameIntervalMS   int64    `json:"frameInterval,omitempty"`
	Frames            []Frame  `json:"frames"`
}

// Frame is a roughly once-per-minute snapshot.
type Frame struct {
	TimestampMS  int64                    `json:"timestamp"`
	Participants map[int]ParticipantFrame `json:"participantFrames"`
	Events       []Event                  `json:"events"`
}

// ParticipantFrame is a cumulative per-player snapshot.
type ParticipantFrame struct {
	ParticipantID       int `json:"participantId"`
	MinionsKilled       int `json:"minionsKilled"`
	JungleMinionsKilled int `json:"jungleMinionsKilled"`
	TotalGold           int `json:"totalGold"`
	CurrentGold         int `json:"currentGold"`
	Level               int `json:"level"`
	XP                  int `json:"xp"`
}

// CreepScore is lane plus jungle minions at this frame.
func (f ParticipantFrame) CreepScore() int {
	return f.MinionsKilled + f.JungleMinionsKilled
}

// Event is a typed timeline event; fields not relevant to Type are nil/empty.
type Event struct {
	Type           string `json:"type"`
	TimestampMS    int64  `json:"timestamp"`
	KillerID       *int   `json:"killerId,omitempty"`
	VictimID       *int   `json:"victimId,omitempty"`
	AssistingIDs   []int  `json:"assistingParticipantIds,omitempty"`
	KillerTeamID   *int   `json:"killerTeamId,omitempty"`
	TeamID         *int   `json:"teamId,omitempty"`
	MonsterType    string `json:"monsterType,omitempty"`
	MonsterSubType string `json:"monsterSubType,omitempty"`
	BuildingType   string `json:"buildingType,omitempty"`
	TowerType      string `json:"towerType,omitempty"`
	LaneType       string `json:"laneType,omitempty"`
}

// TimelineIDForPUUID maps a PUUID to its 1-based timeline participant id.
func (t Timeline) TimelineIDForPUUID(puuid string) (int, bool) {
	if puuid == "" {
		return 0, false
	}
	for i, p := range t.ParticipantPUUIDs {
		if p == puuid {
			return i + 1, true
		}
	}
	return 0, false
}
