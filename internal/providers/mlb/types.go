package mlb

const sourceName = "mlb-statsapi"

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk    int64         `json:"gamePk"`
	GameDate  string        `json:"gameDate"`
	Status    gameStatus    `json:"status"`
	Teams     scheduleTeams `json:"teams"`
	Linescore *linescore    `json:"linescore"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
}

type scheduleTeams struct {
	Away scheduleTeam `json:"away"`
	Home scheduleTeam `json:"home"`
}

type scheduleTeam struct {
	Team     teamInfo `json:"team"`
	Score    *int     `json:"score"`
	IsWinner *bool    `json:"isWinner"`
	Hits     *int     `json:"hits"`
	Errors   *int     `json:"errors"`
}

type teamInfo struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type linescore struct {
	CurrentInning        *int            `json:"currentInning"`
	CurrentInningOrdinal string          `json:"currentInningOrdinal"`
	InningState          string          `json:"inningState"`
	ScheduledInnings     *int            `json:"scheduledInnings"`
	Innings              []inning        `json:"innings"`
	Teams                *linescoreTeams `json:"teams"`
}

type inning struct {
	Num int `json:"num"`
}

type linescoreTeams struct {
	Away linescoreTeam `json:"away"`
	Home linescoreTeam `json:"home"`
}

type linescoreTeam struct {
	Runs   *int `json:"runs"`
	Hits   *int `json:"hits"`
	Errors *int `json:"errors"`
}

type standingsResponse struct {
	Records []standingsRecord `json:"records"`
}

type standingsRecord struct {
	Division    divisionInfo `json:"division"`
	TeamRecords []teamRecord `json:"teamRecords"`
}

type divisionInfo struct {
	ID int `json:"id"`
}

type teamRecord struct {
	Team         teamInfo     `json:"team"`
	LeagueRecord leagueRecord `json:"leagueRecord"`
	GamesBack    string       `json:"gamesBack"`
}

type leagueRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"`
}
