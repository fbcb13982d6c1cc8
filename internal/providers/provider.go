package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

// Result is one league's normalized fetch output: the games plus whatever
// extras the league carries (bye teams for the NFL, standings for MLB/NHL).
type Result struct {
	Games      []domain.Game
	TeamsOnBye []domain.TeamRef
	Standings  *domain.Standings
}

// Empty reports whether the result carries no games.
func (r Result) Empty() bool {
	return len(r.Games) == 0
}

// GameProvider fetches and normalizes one upstream source for a league.
// The date parameter is a YYYY-MM-DD string naming which day's games to
// fetch; sources that window over several days (the NFL game week) may
// ignore it.
type GameProvider interface {
	// Source names the upstream for logs and metrics.
	Source() string
	FetchGames(ctx context.Context, date string) (Result, error)
}

// Gated is implemented by sources that can cheaply report availability,
// letting the fallback chain skip a known-dead upstream without paying for a
// full HTTP round trip.
type Gated interface {
	Available(ctx context.Context) bool
}

// Doer abstracts the HTTP client for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

const defaultHTTPTimeout = 10 * time.Second

// ResolveHTTPClient returns the provided client or a default with a timeout.
func ResolveHTTPClient(client *http.Client) Doer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}
