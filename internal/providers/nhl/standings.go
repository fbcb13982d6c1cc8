package nhl

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/resolve"
)

// FetchStandings reads the league-wide table from the scoreboard API and
// groups it into conference pages of division tables, each sorted by points.
func (c *ScoreboardClient) FetchStandings(ctx context.Context) (*domain.Standings, error) {
	url := c.baseURL + "/standings/now"

	var payload struct {
		Standings []map[string]any `json:"standings"`
	}
	if err := getJSON(ctx, c.httpClient, sourceScoreboard, url, &payload); err != nil {
		return nil, err
	}

	type key struct{ conference, division string }
	groups := make(map[key][]domain.TeamRecord)
	var order []key

	for _, row := range payload.Standings {
		if row == nil {
			continue
		}
		k := key{
			conference: resolve.Text(row["conferenceName"]),
			division:   resolve.Text(row["divisionName"]),
		}
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], mapStandingsRow(row))
	}

	pages := make(map[string]*domain.StandingsPage)
	var pageOrder []string
	for _, k := range order {
		title := k.conference
		if title != "" && !strings.Contains(title, "Conference") {
			title += " Conference"
		}
		page, ok := pages[title]
		if !ok {
			page = &domain.StandingsPage{Title: title}
			pages[title] = page
			pageOrder = append(pageOrder, title)
		}

		records := groups[k]
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Points > records[j].Points
		})
		page.Groups = append(page.Groups, domain.RecordGroup{Name: k.division, Records: records})
	}

	standings := &domain.Standings{Updated: time.Now().UTC()}
	for _, title := range pageOrder {
		standings.Pages = append(standings.Pages, *pages[title])
	}
	return standings, nil
}

func mapStandingsRow(row map[string]any) domain.TeamRecord {
	wins, _ := resolve.Int(row["wins"])
	losses, _ := resolve.Int(row["losses"])
	otLosses, _ := resolve.Int(row["otLosses"])
	points, _ := resolve.Int(row["points"])

	rec := domain.TeamRecord{
		Team: domain.TeamRef{
			ID:           resolve.FirstText(row["teamId"], row["id"]),
			DisplayName:  resolve.FirstText(row["teamName"], row["teamCommonName"]),
			Abbreviation: strings.ToUpper(resolve.FirstText(row["teamAbbrev"], row["triCode"])),
		},
		Wins:     wins,
		Losses:   losses,
		OTLosses: otLosses,
		Points:   points,
	}
	if total := wins + losses + otLosses; total > 0 {
		rec.Pct = float64(2*wins+otLosses) / float64(2*total)
	}
	return rec
}
