package layout

import "github.com/mirrormods/scores-data-service/internal/domain"

// Paginate returns the contiguous slice of games shown on the given page.
// Out-of-range pages yield an empty slice.
func Paginate(games []domain.Game, l Layout, page int) []domain.Game {
	if l.GamesPerPage <= 0 || page < 0 {
		return nil
	}
	start := page * l.GamesPerPage
	if start >= len(games) {
		return nil
	}
	end := start + l.GamesPerPage
	if end > len(games) {
		end = len(games)
	}
	return games[start:end]
}

// Slot is one positioned cell on a scoreboard page.
type Slot struct {
	Game   domain.Game `json:"game"`
	Row    int         `json:"row"`
	Column int         `json:"column"`
	Index  int         `json:"index"`
}

// Slots places a page of games column-major: game i fills column i/rows,
// row i%rows. When mirrored, columns flip so the grid grows leftward on a
// right-aligned display.
func Slots(games []domain.Game, l Layout, mirrored bool) []Slot {
	if l.Rows <= 0 || l.Columns <= 0 {
		return nil
	}

	slots := make([]Slot, 0, len(games))
	for i, g := range games {
		col := i / l.Rows
		row := i % l.Rows
		if col >= l.Columns {
			break
		}
		if mirrored {
			col = l.Columns - 1 - col
		}
		slots = append(slots, Slot{
			Game:   g,
			Row:    row,
			Column: col,
			Index:  row*l.Columns + col,
		})
	}
	return slots
}
