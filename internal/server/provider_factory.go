package server

import (
	"log/slog"
	"time"

	"github.com/mirrormods/scores-data-service/internal/config"
	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/metrics"
	"github.com/mirrormods/scores-data-service/internal/poller"
	"github.com/mirrormods/scores-data-service/internal/providers"
	"github.com/mirrormods/scores-data-service/internal/providers/espn"
	"github.com/mirrormods/scores-data-service/internal/providers/mlb"
	"github.com/mirrormods/scores-data-service/internal/providers/nhl"
)

// providerSet pairs a league's game provider with its optional standings
// fetcher.
type providerSet struct {
	provider  providers.GameProvider
	standings poller.StandingsFetcher
}

// buildProvider wires the upstream stack for one league. The NHL runs a
// fallback chain (the retired statsapi host first, gated behind a DNS probe,
// then the scoreboard API, then the stats REST API); MLB fetches standings
// inline with the schedule; NFL and NBA read ESPN's site scoreboard.
func buildProvider(league domain.League, widget config.Widget, logger *slog.Logger, recorder *metrics.Recorder, location *time.Location) providerSet {
	switch league {
	case domain.LeagueMLB:
		return providerSet{provider: mlb.New(mlb.Config{
			Logger:           logger,
			IncludeStandings: true,
		})}
	case domain.LeagueNHL:
		scoreboard := nhl.NewScoreboard(nhl.ScoreboardConfig{Logger: logger})
		set := providerSet{provider: providers.NewFallbackProvider(league, logger, recorder,
			nhl.NewLegacy(nhl.LegacyConfig{Logger: logger}),
			scoreboard,
			nhl.NewRest(nhl.RestConfig{Logger: logger}),
		)}
		if widget.ShowStandings(league) {
			set.standings = scoreboard.FetchStandings
		}
		return set
	default:
		return providerSet{provider: espn.New(espn.Config{
			League:   league,
			Logger:   logger,
			Location: location,
		})}
	}
}
