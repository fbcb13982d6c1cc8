package domain

import "time"

// GamePhase is the coarse lifecycle state shared by every league.
type GamePhase string

const (
	PhasePreview   GamePhase = "PREVIEW"
	PhaseLive      GamePhase = "LIVE"
	PhaseFinal     GamePhase = "FINAL"
	PhasePostponed GamePhase = "POSTPONED"
	PhaseSuspended GamePhase = "SUSPENDED"
	PhaseCancelled GamePhase = "CANCELLED"
)

// GameStatus pairs the coarse phase with league-specific detail text
// (inning/period/quarter plus clock, "Final/OT", "Postponed", ...).
type GameStatus struct {
	Phase  GamePhase `json:"phase"`
	Detail string    `json:"detail"`
}

// TeamRef identifies a team as the display layer needs it.
type TeamRef struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
}

// TeamLine is one side of a game: the team, its score, and whatever
// league-specific numbers the adapter could extract.
type TeamLine struct {
	Team          TeamRef        `json:"team"`
	Score         *int           `json:"score"`
	ExtraStats    map[string]int `json:"extraStats,omitempty"`
	Linescores    []int          `json:"linescores,omitempty"`
	HasPossession bool           `json:"hasPossession,omitempty"`
	IsWinner      bool           `json:"isWinner,omitempty"`
	IsLoser       bool           `json:"isLoser,omitempty"`
}

// Game is the canonical, league-agnostic record produced by the adapters.
type Game struct {
	ID        string     `json:"id"`
	League    League     `json:"league"`
	StartTime string     `json:"startTime"`
	Status    GameStatus `json:"status"`
	Away      TeamLine   `json:"away"`
	Home      TeamLine   `json:"home"`
}

// ShowStats reports whether per-team metric values should be displayed.
// Preview-like phases normally suppress values, but real data always wins:
// if either side carries a non-empty metric the suppression is lifted.
func (g Game) ShowStats() bool {
	switch g.Status.Phase {
	case PhaseLive, PhaseFinal:
		return true
	}
	return len(g.Away.ExtraStats) > 0 || len(g.Home.ExtraStats) > 0
}

// TeamRecord is a single row in a standings group.
type TeamRecord struct {
	Team      TeamRef `json:"team"`
	Wins      int     `json:"wins"`
	Losses    int     `json:"losses"`
	OTLosses  int     `json:"otLosses,omitempty"`
	Points    int     `json:"points,omitempty"`
	Pct       float64 `json:"pct"`
	GamesBack string  `json:"gamesBack,omitempty"`
}

// RecordGroup is a named list of standings rows (a division or wild card).
type RecordGroup struct {
	Name    string       `json:"name"`
	Records []TeamRecord `json:"records"`
}

// StandingsPage groups record groups the way the display shows them.
type StandingsPage struct {
	Title  string        `json:"title"`
	Groups []RecordGroup `json:"groups"`
}

// Standings is the optional standings extra attached to a league payload.
type Standings struct {
	Pages   []StandingsPage `json:"pages"`
	Updated time.Time       `json:"updated"`
}

// Payload is the per-league GAMES payload handed to the display layer.
type Payload struct {
	League     League     `json:"league"`
	Games      []Game     `json:"games"`
	TeamsOnBye []TeamRef  `json:"teamsOnBye,omitempty"`
	Standings  *Standings `json:"standings,omitempty"`
	Updated    time.Time  `json:"updated"`
}
