package layout

import (
	"testing"

	"github.com/mirrormods/scores-data-service/internal/config"
	"github.com/mirrormods/scores-data-service/internal/domain"
)

func widgetWith(opts map[string]any) config.Widget {
	return config.Widget{Rest: opts}
}

func TestComputeBaseDefaults(t *testing.T) {
	mlb := Compute(domain.LeagueMLB, config.Widget{})
	if mlb.Columns != 2 || mlb.Rows != 2 || mlb.GamesPerPage != 4 {
		t.Fatalf("mlb layout = %+v, want 2x2", mlb)
	}
	if mlb.Scale != 1 {
		t.Fatalf("scale = %v, want the default 1", mlb.Scale)
	}

	for _, league := range []domain.League{domain.LeagueNHL, domain.LeagueNFL, domain.LeagueNBA} {
		l := Compute(league, config.Widget{})
		if l.Columns != 4 || l.Rows != 4 || l.GamesPerPage != 16 {
			t.Fatalf("%s layout = %+v, want 4x4", league, l)
		}
	}
}

func TestComputeOverridesNeverShrinkBelowBase(t *testing.T) {
	l := Compute(domain.LeagueNHL, widgetWith(map[string]any{
		"scoreboardColumns": 1,
		"gamesPerColumn":    2,
	}))
	if l.Columns != 4 || l.Rows != 4 {
		t.Fatalf("layout = %+v, overrides must not shrink below the 4x4 base", l)
	}
}

func TestComputeAliasAndLeagueSuffix(t *testing.T) {
	l := Compute(domain.LeagueNHL, widgetWith(map[string]any{
		"scoreboardRows":        6,
		"scoreboardColumns_nhl": 5,
	}))
	if l.Columns != 5 {
		t.Fatalf("columns = %d, want the league-suffixed 5", l.Columns)
	}
	if l.Rows != 6 {
		t.Fatalf("rows = %d, want the aliased 6", l.Rows)
	}
}

func TestComputeGamesPerPageDerivesRows(t *testing.T) {
	l := Compute(domain.LeagueNBA, widgetWith(map[string]any{
		"gamesPerPage": 18,
	}))
	if l.Rows != 5 {
		t.Fatalf("rows = %d, want ceil(18/4) = 5", l.Rows)
	}
	if l.GamesPerPage != 20 {
		t.Fatalf("gamesPerPage = %d, want 20 (the grid rounds up)", l.GamesPerPage)
	}
}

func TestComputeMLBHardCap(t *testing.T) {
	l := Compute(domain.LeagueMLB, widgetWith(map[string]any{
		"scoreboardColumns": 5,
		"gamesPerColumn":    5,
	}))
	if l.Columns > 2 {
		t.Fatalf("columns = %d, the MLB cap is 2", l.Columns)
	}
	if l.GamesPerPage > 8 {
		t.Fatalf("gamesPerPage = %d, the MLB cap is 8 games", l.GamesPerPage)
	}
}

func TestComputeScaleClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 1}, {-2, 1}, {0.3, 0.6}, {2.5, 1.4}, {1.1, 1.1},
	}
	for _, tc := range tests {
		w := config.Widget{LayoutScale: tc.in}
		if got := Compute(domain.LeagueMLB, w).Scale; got != tc.want {
			t.Fatalf("scale(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func makeGames(n int) []domain.Game {
	games := make([]domain.Game, n)
	for i := range games {
		games[i] = domain.Game{ID: string(rune('A' + i))}
	}
	return games
}

func TestPaginateCoversEveryGameExactlyOnce(t *testing.T) {
	games := makeGames(11)
	l := Layout{Columns: 2, Rows: 2, GamesPerPage: 4}

	seen := map[string]int{}
	for page := 0; page < PageCount(len(games), l); page++ {
		chunk := Paginate(games, l, page)
		if len(chunk) == 0 {
			t.Fatalf("page %d is empty", page)
		}
		if len(chunk) > l.GamesPerPage {
			t.Fatalf("page %d holds %d games, cap is %d", page, len(chunk), l.GamesPerPage)
		}
		for _, g := range chunk {
			seen[g.ID]++
		}
	}
	if len(seen) != len(games) {
		t.Fatalf("saw %d distinct games, want %d", len(seen), len(games))
	}
	for id, count := range seen {
		if count != 1 {
			t.Fatalf("game %s appeared %d times", id, count)
		}
	}
}

func TestPaginateOutOfRange(t *testing.T) {
	l := Layout{Columns: 2, Rows: 2, GamesPerPage: 4}
	if got := Paginate(makeGames(3), l, 5); got != nil {
		t.Fatalf("out-of-range page = %v, want nil", got)
	}
}

func TestPageCount(t *testing.T) {
	l := Layout{Columns: 2, Rows: 2, GamesPerPage: 4}
	tests := []struct{ games, want int }{
		{0, 1}, {1, 1}, {4, 1}, {5, 2}, {11, 3},
	}
	for _, tc := range tests {
		if got := PageCount(tc.games, l); got != tc.want {
			t.Fatalf("PageCount(%d) = %d, want %d", tc.games, got, tc.want)
		}
	}
}

func TestSlotsColumnMajor(t *testing.T) {
	l := Layout{Columns: 2, Rows: 2, GamesPerPage: 4}
	slots := Slots(makeGames(4), l, false)
	want := []struct{ row, col, index int }{
		{0, 0, 0}, {1, 0, 2}, {0, 1, 1}, {1, 1, 3},
	}
	for i, w := range want {
		s := slots[i]
		if s.Row != w.row || s.Column != w.col || s.Index != w.index {
			t.Fatalf("slot %d = {row %d col %d idx %d}, want {row %d col %d idx %d}",
				i, s.Row, s.Column, s.Index, w.row, w.col, w.index)
		}
	}
}

func TestSlotsMirrored(t *testing.T) {
	l := Layout{Columns: 3, Rows: 2, GamesPerPage: 6}
	slots := Slots(makeGames(2), l, true)
	// Both games land in logical column 0, mirrored to column 2.
	for _, s := range slots {
		if s.Column != 2 {
			t.Fatalf("mirrored column = %d, want 2", s.Column)
		}
	}
}
