package espn

// scoreboardResponse is the slice of ESPN's site API the adapter consumes.
type scoreboardResponse struct {
	Week   *weekInfo `json:"week"`
	Events []event   `json:"events"`
}

type weekInfo struct {
	Number     int        `json:"number"`
	TeamsOnBye []teamInfo `json:"teamsOnBye"`
}

type event struct {
	ID           string        `json:"id"`
	UID          string        `json:"uid"`
	Date         string        `json:"date"`
	Status       *eventStatus  `json:"status"`
	Competitions []competition `json:"competitions"`
}

type eventStatus struct {
	Period       int        `json:"period"`
	DisplayClock string     `json:"displayClock"`
	Type         statusType `json:"type"`
}

type statusType struct {
	State       string `json:"state"`
	Detail      string `json:"detail"`
	ShortDetail string `json:"shortDetail"`
	Completed   bool   `json:"completed"`
}

type competition struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"`
	Competitors []competitor `json:"competitors"`
	Situation   *situation   `json:"situation"`
	Status      *eventStatus `json:"status"`
}

type competitor struct {
	ID         string      `json:"id"`
	HomeAway   string      `json:"homeAway"`
	Score      string      `json:"score"`
	Winner     *bool       `json:"winner"`
	Team       teamInfo    `json:"team"`
	Linescores []linescore `json:"linescores"`
}

type teamInfo struct {
	ID               string `json:"id"`
	DisplayName      string `json:"displayName"`
	ShortDisplayName string `json:"shortDisplayName"`
	Name             string `json:"name"`
	Abbreviation     string `json:"abbreviation"`
}

type linescore struct {
	Period int     `json:"period"`
	Value  float64 `json:"value"`
}

type situation struct {
	Possession string `json:"possession"`
}
