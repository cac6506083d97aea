// Package stats derives per-player performance numbers from match and
// timeline documents. Everything here is a pure function of its inputs.
package stats

// OpponentRef identifies the resolved lane opponent.
type OpponentRef struct {
	Index    int    `json:"index"`
	PUUID    string `json:"puuid"`
	Name     string `json:"name"`
	Champion string `json:"champion"`
	Lane     string `json:"lane"`
}

// PlayerMetrics is the aggregate view for one participant.
// Pointer fields are nil when their denominator or duration is unavailable.
type PlayerMetrics struct {
	Index                int          `json:"index"`
	PUUID                string       `json:"puuid"`
	Name                 string       `json:"name"`
	Champion             string       `json:"champion"`
	Lane                 string       `json:"lane"`
	TeamID               int          `json:"teamId"`
	Win                  bool         `json:"win"`
	Kills                int          `json:"kills"`
	Deaths               int          `json:"deaths"`
	Assists              int          `json:"assists"`
	KDA                  float64      `json:"kda"`
	CreepScore           int          `json:"cs"`
	CSPerMin             *float64     `json:"csPerMin"`
	GoldEarned           int          `json:"goldEarned"`
	GoldPerMin           *float64     `json:"goldPerMin"`
	VisionScore          int          `json:"visionScore"`
	VisionPerMin         *float64     `json:"visionPerMin"`
	KillParticipationPct *float64     `json:"killParticipationPct"`
	TeamDamageSharePct   *float64     `json:"teamDamageSharePct"`
	DurationMinutes      *float64     `json:"durationMinutes"`
	Opponent             *OpponentRef `json:"opponent"`
}

// ObjectiveEvent is an elite monster capture. TeamID is the killing team.
type ObjectiveEvent struct {
	Minute  float64 `json:"minute"`
	TeamID  *int    `json:"teamId"`
	SubType string  `json:"subType,omitempty"`
}

// StructureEvent is a tower or plate destruction. TeamID is the owning team of a tower.
type StructureEvent struct {
	Minute    float64 `json:"minute"`
	Lane      string  `json:"lane,omitempty"`
	TeamID    *int    `json:"teamId,omitempty"`
	TowerType string  `json:"towerType,omitempty"`
}

// TimelineSummary is the phase-level reduction of a timeline for one participant.
// Available is false when the target could not be located in the timeline.
type TimelineSummary struct {
	Available      bool             `json:"available"`
	CSAt10         *int             `json:"csAt10"`
	CSAt20         *int             `json:"csAt20"`
	CSPerMin0To10  *float64         `json:"cs0To10PerMin"`
	CSPerMin10To20 *float64         `json:"cs10To20PerMin"`
	GoldDiffAt10   *int             `json:"goldDiffAt10"`
	GoldDiffAt20   *int             `json:"goldDiffAt20"`
	KillsAt        []float64        `json:"killsAt"`
	DeathsAt       []float64        `json:"deathsAt"`
	Assists        int              `json:"assists"`
	Dragons        []ObjectiveEvent `json:"dragons"`
	Heralds        []ObjectiveEvent `json:"heralds"`
	Barons         []ObjectiveEvent `json:"barons"`
	Plates         []StructureEvent `json:"plates"`
	Towers         []StructureEvent `json:"towers"`
}
