package store

import (
	"testing"
	"time"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

func TestSetPayloadReplacesWholesale(t *testing.T) {
	s := NewMemoryStore()

	s.SetPayload(domain.Payload{
		League: domain.LeagueMLB,
		Games:  []domain.Game{{ID: "1"}, {ID: "2"}, {ID: "3"}},
	})
	s.SetPayload(domain.Payload{
		League:  domain.LeagueMLB,
		Games:   []domain.Game{{ID: "9"}},
		Updated: time.Now(),
	})

	games := s.Games(domain.LeagueMLB)
	if len(games) != 1 || games[0].ID != "9" {
		t.Fatalf("games = %+v, want only the replacement", games)
	}
}

func TestPayloadMissingLeague(t *testing.T) {
	s := NewMemoryStore()
	if _, ok := s.Payload(domain.LeagueNHL); ok {
		t.Fatal("empty store should report no payload")
	}
	if s.Games(domain.LeagueNHL) != nil {
		t.Fatal("empty store should report nil games")
	}
}

func TestLeaguesInSupportedOrder(t *testing.T) {
	s := NewMemoryStore()
	s.SetPayload(domain.Payload{League: domain.LeagueNFL})
	s.SetPayload(domain.Payload{League: domain.LeagueMLB})

	leagues := s.Leagues()
	if len(leagues) != 2 || leagues[0] != domain.LeagueMLB || leagues[1] != domain.LeagueNFL {
		t.Fatalf("leagues = %v, want [mlb nfl]", leagues)
	}
}
