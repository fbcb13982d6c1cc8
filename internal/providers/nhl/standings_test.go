package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const standingsBody = `{
  "standings": [
    {"conferenceName": "Western", "divisionName": "Central",
     "teamName": {"default": "Winnipeg Jets"}, "teamAbbrev": {"default": "WPG"},
     "wins": 30, "losses": 10, "otLosses": 2, "points": 62},
    {"conferenceName": "Western", "divisionName": "Central",
     "teamName": {"default": "Dallas Stars"}, "teamAbbrev": {"default": "DAL"},
     "wins": 28, "losses": 12, "otLosses": 1, "points": 57},
    {"conferenceName": "Eastern", "divisionName": "Atlantic",
     "teamName": {"default": "Boston Bruins"}, "teamAbbrev": {"default": "BOS"},
     "wins": 25, "losses": 14, "otLosses": 3, "points": 53}
  ]
}`

func TestFetchStandingsGroupsByConferenceAndDivision(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/standings/now" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(standingsBody))
	}))
	defer srv.Close()

	c := NewScoreboard(ScoreboardConfig{BaseURL: srv.URL})
	standings, err := c.FetchStandings(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if len(standings.Pages) != 2 {
		t.Fatalf("got %d pages, want one per conference", len(standings.Pages))
	}
	west := standings.Pages[0]
	if west.Title != "Western Conference" {
		t.Fatalf("first page = %q", west.Title)
	}
	if len(west.Groups) != 1 || west.Groups[0].Name != "Central" {
		t.Fatalf("west groups = %+v", west.Groups)
	}

	central := west.Groups[0].Records
	if len(central) != 2 {
		t.Fatalf("got %d Central teams, want 2", len(central))
	}
	if central[0].Team.Abbreviation != "WPG" {
		t.Fatalf("top of Central = %q, want the points leader WPG", central[0].Team.Abbreviation)
	}
	if central[0].Points != 62 || central[0].OTLosses != 2 {
		t.Fatalf("record = %+v", central[0])
	}
}
