// Package layout packs a league's games into a fixed scoreboard grid.
package layout

import (
	"github.com/mirrormods/scores-data-service/internal/config"
	"github.com/mirrormods/scores-data-service/internal/domain"
)

// Layout is the computed grid for one league's scoreboard pages.
type Layout struct {
	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	GamesPerPage int     `json:"gamesPerPage"`
	Scale        float64 `json:"scale"`
}

type caps struct {
	games   int
	columns int
}

const (
	mlbBaseColumns = 2
	mlbBaseRows    = 2
	proBaseColumns = 4
	proBaseRows    = 4
)

// hardCaps bounds how large a league's grid may grow. Only MLB carries one:
// its cards are tall enough that more than 8 games or 2 columns overflow the
// mirror.
var hardCaps = map[domain.League]caps{
	domain.LeagueMLB: {games: 8, columns: 2},
}

func baseGrid(league domain.League) (columns, rows int) {
	if league == domain.LeagueMLB {
		return mlbBaseColumns, mlbBaseRows
	}
	return proBaseColumns, proBaseRows
}

// Compute derives the grid for a league from its base defaults and the
// widget's override options. Overrides can grow the grid but never shrink it
// below the league base; a gamesPerPage override re-derives rows; the
// league's hard cap is enforced last, shrinking columns before rows.
func Compute(league domain.League, w config.Widget) Layout {
	minColumns, minRows := baseGrid(league)
	columns, rows := minColumns, minRows

	if v, ok := config.IntForLeague(w.Rest, "scoreboardColumns", league); ok && v > 0 {
		columns = v
	}
	if v, ok := config.IntForLeague(w.Rest, "gamesPerColumn", league); ok && v > 0 {
		rows = v
	}
	if columns < minColumns {
		columns = minColumns
	}
	if rows < minRows {
		rows = minRows
	}

	if v, ok := config.IntForLeague(w.Rest, "gamesPerPage", league); ok && v > 0 {
		rows = ceilDiv(v, columns)
		if rows < minRows {
			rows = minRows
		}
	}

	if limit, capped := hardCaps[league]; capped {
		if columns > limit.columns {
			columns = limit.columns
			if columns < minColumns {
				columns = minColumns
			}
		}
		if maxRows := limit.games / columns; rows > maxRows {
			rows = maxRows
		}
	}

	return Layout{
		Columns:      columns,
		Rows:         rows,
		GamesPerPage: columns * rows,
		Scale:        w.Scale(),
	}
}

// PageCount returns how many scoreboard pages n games occupy. Zero games
// still occupy one (empty) page so the rotation has something to show.
func PageCount(n int, l Layout) int {
	if n <= 0 || l.GamesPerPage <= 0 {
		return 1
	}
	return ceilDiv(n, l.GamesPerPage)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
