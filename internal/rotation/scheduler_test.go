package rotation

import (
	"testing"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/layout"
)

type fakeSource struct {
	payloads map[domain.League]domain.Payload
}

func (f *fakeSource) Payload(l domain.League) (domain.Payload, bool) {
	p, ok := f.payloads[l]
	return p, ok
}

func games(n int) []domain.Game {
	out := make([]domain.Game, n)
	for i := range out {
		out[i] = domain.Game{ID: string(rune('a' + i))}
	}
	return out
}

func smallLayout(domain.League) layout.Layout {
	return layout.Layout{Columns: 2, Rows: 2, GamesPerPage: 4, Scale: 1}
}

func TestAdvanceWrapsThroughLeagues(t *testing.T) {
	source := &fakeSource{payloads: map[domain.League]domain.Payload{
		domain.LeagueMLB: {League: domain.LeagueMLB, Games: games(6)}, // 2 pages
		domain.LeagueNHL: {League: domain.LeagueNHL, Games: games(3)}, // 1 page
	}}
	s := New(Config{
		Leagues:   []domain.League{domain.LeagueMLB, domain.LeagueNHL},
		Source:    source,
		LayoutFor: smallLayout,
	})

	want := []View{
		{League: domain.LeagueMLB, Kind: KindScoreboard, Page: 0},
		{League: domain.LeagueMLB, Kind: KindScoreboard, Page: 1},
		{League: domain.LeagueNHL, Kind: KindScoreboard, Page: 0},
		{League: domain.LeagueMLB, Kind: KindScoreboard, Page: 0},
	}
	for i, w := range want {
		if got := s.View(); got != w {
			t.Fatalf("step %d: view = %+v, want %+v", i, got, w)
		}
		s.Advance()
	}
}

func TestSingleLeagueNeverAdvancesIndex(t *testing.T) {
	source := &fakeSource{payloads: map[domain.League]domain.Payload{
		domain.LeagueMLB: {League: domain.LeagueMLB, Games: games(5)}, // 2 pages
	}}
	s := New(Config{
		Leagues:   []domain.League{domain.LeagueMLB},
		Source:    source,
		LayoutFor: smallLayout,
	})

	for i := 0; i < 6; i++ {
		if got := s.View().League; got != domain.LeagueMLB {
			t.Fatalf("step %d: league = %s", i, got)
		}
		s.Advance()
	}
}

func TestStandingsPagesFollowScoreboardPages(t *testing.T) {
	source := &fakeSource{payloads: map[domain.League]domain.Payload{
		domain.LeagueNHL: {
			League: domain.LeagueNHL,
			Games:  games(4), // 1 scoreboard page
			Standings: &domain.Standings{Pages: []domain.StandingsPage{
				{Title: "Eastern Conference"}, {Title: "Western Conference"},
			}},
		},
	}}
	s := New(Config{
		Leagues:       []domain.League{domain.LeagueNHL},
		Source:        source,
		LayoutFor:     smallLayout,
		ShowStandings: func(l domain.League) bool { return l == domain.LeagueNHL },
	})

	want := []View{
		{League: domain.LeagueNHL, Kind: KindScoreboard, Page: 0},
		{League: domain.LeagueNHL, Kind: KindStandings, Page: 0},
		{League: domain.LeagueNHL, Kind: KindStandings, Page: 1},
		{League: domain.LeagueNHL, Kind: KindScoreboard, Page: 0},
	}
	for i, w := range want {
		if got := s.View(); got != w {
			t.Fatalf("step %d: view = %+v, want %+v", i, got, w)
		}
		s.Advance()
	}
}

func TestStandingsDisabledAreSkipped(t *testing.T) {
	source := &fakeSource{payloads: map[domain.League]domain.Payload{
		domain.LeagueNHL: {
			League:    domain.LeagueNHL,
			Games:     games(2),
			Standings: &domain.Standings{Pages: []domain.StandingsPage{{Title: "Eastern Conference"}}},
		},
	}}
	s := New(Config{
		Leagues:   []domain.League{domain.LeagueNHL},
		Source:    source,
		LayoutFor: smallLayout,
	})

	s.Advance()
	if got := s.View(); got.Kind != KindScoreboard || got.Page != 0 {
		t.Fatalf("view = %+v, standings must not rotate in when disabled", got)
	}
}

func TestOnDataResetsOutOfRangePage(t *testing.T) {
	source := &fakeSource{payloads: map[domain.League]domain.Payload{
		domain.LeagueMLB: {League: domain.LeagueMLB, Games: games(8)}, // 2 pages
	}}
	s := New(Config{
		Leagues:   []domain.League{domain.LeagueMLB},
		Source:    source,
		LayoutFor: smallLayout,
	})

	s.Advance() // page 1
	source.payloads[domain.LeagueMLB] = domain.Payload{League: domain.LeagueMLB, Games: games(2)}
	s.OnData(domain.LeagueMLB)

	if got := s.View(); got.Page != 0 {
		t.Fatalf("page = %d, want reset to 0 after shrink", got.Page)
	}
}

func TestOnDataIgnoresInactiveLeague(t *testing.T) {
	source := &fakeSource{payloads: map[domain.League]domain.Payload{
		domain.LeagueMLB: {League: domain.LeagueMLB, Games: games(8)},
	}}
	s := New(Config{
		Leagues:   []domain.League{domain.LeagueMLB, domain.LeagueNHL},
		Source:    source,
		LayoutFor: smallLayout,
	})

	s.Advance() // mlb page 1
	s.OnData(domain.LeagueNHL)
	if got := s.View(); got.Page != 1 {
		t.Fatalf("page = %d, updates for another league must not move the view", got.Page)
	}
}

func TestEmptyCacheStillShowsOnePage(t *testing.T) {
	s := New(Config{
		Leagues:   []domain.League{domain.LeagueMLB, domain.LeagueNHL},
		Source:    &fakeSource{payloads: map[domain.League]domain.Payload{}},
		LayoutFor: smallLayout,
	})

	s.Advance()
	if got := s.View(); got.League != domain.LeagueNHL {
		t.Fatalf("league = %s, an empty league occupies one page then yields", got.League)
	}
}
