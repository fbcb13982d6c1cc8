package nhl

const (
	sourceScoreboard = "nhl-scoreboard"
	sourceLegacy     = "nhl-legacy"
	sourceRest       = "nhl-rest"
)

// periodDescriptor is the shared shape all three NHL APIs eventually reduce
// to: which period, what kind, and how much of it is left.
type periodDescriptor struct {
	Number        int
	HasNumber     bool
	Type          string
	TimeRemaining string
}

// legacySchedule models the statsapi.web.nhl.com schedule payload, which is
// the same family of API as the MLB stats endpoint.
type legacySchedule struct {
	Dates []legacyDate `json:"dates"`
}

type legacyDate struct {
	Date  string       `json:"date"`
	Games []legacyGame `json:"games"`
}

type legacyGame struct {
	GamePk    int64            `json:"gamePk"`
	GameDate  string           `json:"gameDate"`
	Status    legacyStatus     `json:"status"`
	Teams     legacyTeams      `json:"teams"`
	Linescore *legacyLinescore `json:"linescore"`
}

type legacyStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type legacyTeams struct {
	Away legacyTeamSide `json:"away"`
	Home legacyTeamSide `json:"home"`
}

type legacyTeamSide struct {
	Team  legacyTeamInfo `json:"team"`
	Score *int           `json:"score"`
}

type legacyTeamInfo struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type legacyLinescore struct {
	CurrentPeriod              *int              `json:"currentPeriod"`
	CurrentPeriodOrdinal       string            `json:"currentPeriodOrdinal"`
	CurrentPeriodTimeRemaining string            `json:"currentPeriodTimeRemaining"`
	Teams                      *legacyShotsTeams `json:"teams"`
}

type legacyShotsTeams struct {
	Away legacyShots `json:"away"`
	Home legacyShots `json:"home"`
}

type legacyShots struct {
	ShotsOnGoal *int `json:"shotsOnGoal"`
}
