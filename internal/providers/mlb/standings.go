package mlb

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

type divisionSpec struct {
	name       string
	leagueID   int
	divisionID int
}

var mlbDivisions = []divisionSpec{
	{name: "NL East", leagueID: 104, divisionID: 204},
	{name: "NL Central", leagueID: 104, divisionID: 205},
	{name: "NL West", leagueID: 104, divisionID: 203},
	{name: "AL East", leagueID: 103, divisionID: 201},
	{name: "AL Central", leagueID: 103, divisionID: 202},
	{name: "AL West", leagueID: 103, divisionID: 200},
}

type divisionStandings struct {
	spec    divisionSpec
	records []domain.TeamRecord
}

// fetchStandings pulls the six division tables and derives the two wild-card
// groups from them: every team that does not lead its division, ranked by
// winning percentage.
func (c *Client) fetchStandings(ctx context.Context, season int) (*domain.Standings, error) {
	divisions := make([]divisionStandings, 0, len(mlbDivisions))
	for _, spec := range mlbDivisions {
		url := fmt.Sprintf("%s/standings?sportId=1&season=%d&leagueId=%d&divisionId=%d",
			c.baseURL, season, spec.leagueID, spec.divisionID)

		var payload standingsResponse
		if err := c.getJSON(ctx, url, &payload); err != nil {
			return nil, fmt.Errorf("standings %s: %w", spec.name, err)
		}

		divisions = append(divisions, divisionStandings{
			spec:    spec,
			records: mapDivisionRecords(payload, spec.divisionID),
		})
	}

	return &domain.Standings{
		Pages: []domain.StandingsPage{
			standingsPage("National League", 104, divisions),
			standingsPage("American League", 103, divisions),
		},
		Updated: time.Now().UTC(),
	}, nil
}

// mapDivisionRecords picks the record set matching the requested division id
// (the endpoint can echo back more than one) and keeps the upstream order,
// which already ranks by winning percentage.
func mapDivisionRecords(payload standingsResponse, divisionID int) []domain.TeamRecord {
	var match *standingsRecord
	for i := range payload.Records {
		if payload.Records[i].Division.ID == divisionID {
			match = &payload.Records[i]
			break
		}
	}
	if match == nil && len(payload.Records) > 0 {
		match = &payload.Records[0]
	}
	if match == nil {
		return nil
	}

	records := make([]domain.TeamRecord, 0, len(match.TeamRecords))
	for _, tr := range match.TeamRecords {
		records = append(records, mapTeamRecord(tr))
	}
	return records
}

func mapTeamRecord(tr teamRecord) domain.TeamRecord {
	return domain.TeamRecord{
		Team: domain.TeamRef{
			ID:           strconv.Itoa(tr.Team.ID),
			DisplayName:  tr.Team.Name,
			Abbreviation: domain.ResolveAbbreviation(tr.Team.Name, tr.Team.Abbreviation),
		},
		Wins:      tr.LeagueRecord.Wins,
		Losses:    tr.LeagueRecord.Losses,
		Pct:       recordPct(tr.LeagueRecord),
		GamesBack: tr.GamesBack,
	}
}

func recordPct(rec leagueRecord) float64 {
	if p, err := strconv.ParseFloat(rec.Pct, 64); err == nil && p > 0 {
		return p
	}
	total := rec.Wins + rec.Losses
	if total == 0 {
		return 0
	}
	return float64(rec.Wins) / float64(total)
}

func standingsPage(title string, leagueID int, divisions []divisionStandings) domain.StandingsPage {
	page := domain.StandingsPage{Title: title}
	for _, div := range divisions {
		if div.spec.leagueID != leagueID {
			continue
		}
		page.Groups = append(page.Groups, domain.RecordGroup{
			Name:    div.spec.name,
			Records: div.records,
		})
	}
	page.Groups = append(page.Groups, domain.RecordGroup{
		Name:    "Wild Card",
		Records: wildCard(leagueID, divisions),
	})
	return page
}

// wildCard collects every team in the league that is not its division's
// percentage leader, sorted best-first.
func wildCard(leagueID int, divisions []divisionStandings) []domain.TeamRecord {
	leaders := make(map[string]bool, len(divisions))
	for _, div := range divisions {
		if lead := divisionLeader(div.records); lead != "" {
			leaders[lead] = true
		}
	}

	var contenders []domain.TeamRecord
	for _, div := range divisions {
		if div.spec.leagueID != leagueID {
			continue
		}
		for _, rec := range div.records {
			if !leaders[rec.Team.ID] {
				contenders = append(contenders, rec)
			}
		}
	}

	sort.SliceStable(contenders, func(i, j int) bool {
		return contenders[i].Pct > contenders[j].Pct
	})
	return contenders
}

func divisionLeader(records []domain.TeamRecord) string {
	leaderID, best := "", -1.0
	for _, rec := range records {
		if rec.Pct > best {
			leaderID, best = rec.Team.ID, rec.Pct
		}
	}
	return leaderID
}
