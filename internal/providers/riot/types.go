package riot

type accountResponse struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type summonerResponse struct {
	ID    string `json:"id"`
	PUUID string `json:"puuid"`
	Name  string `json:"name"`
}

type matchResponse struct {
	Metadata matchMetadata `json:"metadata"`
	Info     matchInfo     `json:"info"`
}

type matchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type matchInfo struct {
	GameCreation       *int64                `json:"gameCreation"`
	GameStartTimestamp *int64                `json:"gameStartTimestamp"`
	GameEndTimestamp   *int64                `json:"gameEndTimestamp"`
	GameDuration       *int64                `json:"gameDuration"`
	GameMode           string                `json:"gameMode"`
	GameVersion        string                `json:"gameVersion"`
	PlatformID         string                `json:"platformId"`
	QueueID            int                   `json:"queueId"`
	Participants       []participantResponse `json:"participants"`
}

type participantResponse struct {
	PUUID                       string      `json:"puuid"`
	RiotIDGameName              string      `json:"riotIdGameName"`
	RiotIDTagline               string      `json:"riotIdTagline"`
	SummonerName                string      `json:"summonerName"`
	ChampionName                string      `json:"championName"`
	TeamID                      int         `json:"teamId"`
	TeamPosition                string      `json:"teamPosition"`
	IndividualPosition          string      `json:"individualPosition"`
	Lane                        string      `json:"lane"`
	Win                         bool        `json:"win"`
	Kills                       int         `json:"kills"`
	Deaths                      int         `json:"deaths"`
	Assists                     int         `json:"assists"`
	TotalMinionsKilled          int         `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int         `json:"neutralMinionsKilled"`
	GoldEarned                  int         `json:"goldEarned"`
	TotalDamageDealtToChampions int         `json:"totalDamageDealtToChampions"`
	VisionScore                 int         `json:"visionScore"`
	TimePlayed                  *int64      `json:"timePlayed"`
	Challenges                  *challenges `json:"challenges"`
}

type challenges struct {
	KDA *float64 `json:"kda"`
}

type timelineResponse struct {
	Metadata matchMetadata `json:"metadata"`
	Info     timelineInfo  `json:"info"`
}

type timelineInfo struct {
	FrameInterval int64           `json:"frameInterval"`
	Frames        []frameResponse `json:"frames"`
}

// Participant frames are keyed by the participant id as a string ("1".."10").
type frameResponse struct {
	Timestamp         int64                               `json:"timestamp"`
	ParticipantFrames map[string]participantFrameResponse `json:"participantFrames"`
	Events            []eventResponse                     `json:"events"`
}

type participantFrameResponse struct {
	ParticipantID       int `json:"participantId"`
	MinionsKilled       int `json:"minionsKilled"`
	JungleMinionsKilled int `json:"jungleMinionsKilled"`
	TotalGold           int `json:"totalGold"`
	CurrentGold         int `json:"currentGold"`
	Level               int `json:"level"`
	XP                  int `json:"xp"`
}

type eventResponse struct {
	Type                    string `json:"type"`
	Timestamp               int64  `json:"timestamp"`
	KillerID                *int   `json:"killerId"`
	VictimID                *int   `json:"victimId"`
	AssistingParticipantIDs []int  `json:"assistingParticipantIds"`
	KillerTeamID            *int   `json:"killerTeamId"`
	TeamID                  *int   `json:"teamId"`
	MonsterType             string `json:"monsterType"`
	MonsterSubType          string `json:"monsterSubType"`
	BuildingType            string `json:"buildingType"`
	TowerType               string `json:"towerType"`
	LaneType                string `json:"laneType"`
}
