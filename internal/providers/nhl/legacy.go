package nhl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/providers"
	"github.com/mirrormods/scores-data-service/internal/resolve"
)

const (
	defaultLegacyBaseURL = "https://statsapi.web.nhl.com/api/v1"
	legacyHost           = "statsapi.web.nhl.com"
)

// LegacyClient reads the retired statsapi schedule endpoint. The hostname
// stopped resolving when the league decommissioned the API, so the client is
// gated behind a DNS probe and the fallback chain skips it without burning a
// request timeout.
type LegacyClient struct {
	baseURL    string
	httpClient providers.Doer
	logger     *slog.Logger
	probe      *ReachabilityProbe
}

type LegacyConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Probe      *ReachabilityProbe
}

func NewLegacy(cfg LegacyConfig) *LegacyClient {
	base := cfg.BaseURL
	if base == "" {
		base = defaultLegacyBaseURL
	}
	probe := cfg.Probe
	if probe == nil {
		probe = NewReachabilityProbe(ReachabilityConfig{Host: legacyHost, Logger: cfg.Logger})
	}
	return &LegacyClient{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		probe:      probe,
	}
}

func (c *LegacyClient) Source() string { return sourceLegacy }

func (c *LegacyClient) Available(ctx context.Context) bool {
	return c.probe.Reachable(ctx)
}

func (c *LegacyClient) FetchGames(ctx context.Context, date string) (providers.Result, error) {
	url := fmt.Sprintf("%s/schedule?date=%s&expand=schedule.linescore", c.baseURL, date)

	var payload legacySchedule
	if err := getJSON(ctx, c.httpClient, sourceLegacy, url, &payload); err != nil {
		return providers.Result{}, err
	}

	var result providers.Result
	for _, bucket := range payload.Dates {
		if bucket.Date != "" && bucket.Date != date {
			continue
		}
		for _, g := range bucket.Games {
			result.Games = append(result.Games, mapLegacyGame(g))
		}
	}
	return result, nil
}

func mapLegacyGame(g legacyGame) domain.Game {
	game := domain.Game{
		ID:        strconv.FormatInt(g.GamePk, 10),
		League:    domain.LeagueNHL,
		StartTime: g.GameDate,
		Status:    mapLegacyStatus(g),
		Away:      mapLegacyTeam(g.Teams.Away, legacyShotsSide(g.Linescore, false)),
		Home:      mapLegacyTeam(g.Teams.Home, legacyShotsSide(g.Linescore, true)),
	}
	markWinners(&game)
	return game
}

// mapLegacyStatus leans on the statsapi abstract state but rebuilds the
// detail text from the linescore so period labels match the other sources.
func mapLegacyStatus(g legacyGame) domain.GameStatus {
	detailed := g.Status.DetailedState
	abstract := g.Status.AbstractGameState

	switch {
	case strings.Contains(detailed, "Postponed"):
		return domain.GameStatus{Phase: domain.PhasePostponed, Detail: "Postponed"}
	case strings.Contains(detailed, "Suspended"):
		return domain.GameStatus{Phase: domain.PhaseSuspended, Detail: "Suspended"}
	case strings.Contains(detailed, "Cancelled") || strings.Contains(detailed, "Canceled"):
		return domain.GameStatus{Phase: domain.PhaseCancelled, Detail: "Cancelled"}
	case abstract == "Final":
		return domain.GameStatus{Phase: domain.PhaseFinal, Detail: finalDetail(legacyPeriodDescriptor(g.Linescore))}
	case abstract == "Live":
		return domain.GameStatus{Phase: domain.PhaseLive, Detail: liveDetail(legacyPeriodDescriptor(g.Linescore))}
	default:
		detail := detailed
		if detail == "" {
			detail = "Scheduled"
		}
		return domain.GameStatus{Phase: domain.PhasePreview, Detail: detail}
	}
}

// legacyPeriodDescriptor reconstructs the period kind from the ordinal text,
// which is the only place the legacy linescore reports OT and SO.
func legacyPeriodDescriptor(ls *legacyLinescore) periodDescriptor {
	if ls == nil {
		return periodDescriptor{}
	}
	pd := periodDescriptor{TimeRemaining: strings.TrimSpace(ls.CurrentPeriodTimeRemaining)}
	if n, ok := resolve.Int(ls.CurrentPeriod); ok {
		pd.Number, pd.HasNumber = n, true
	}
	ordinal := strings.ToUpper(strings.TrimSpace(ls.CurrentPeriodOrdinal))
	switch {
	case ordinal == "SO":
		pd.Type = "SO"
	case strings.HasSuffix(ordinal, "OT"):
		pd.Type = "OT"
	}
	return pd
}

func mapLegacyTeam(side legacyTeamSide, shots legacyShots) domain.TeamLine {
	return domain.TeamLine{
		Team: domain.TeamRef{
			ID:           strconv.Itoa(side.Team.ID),
			DisplayName:  side.Team.Name,
			Abbreviation: strings.ToUpper(resolve.FirstText(side.Team.Abbreviation, side.Team.Name)),
		},
		Score:      side.Score,
		ExtraStats: sogStats(shots.ShotsOnGoal),
	}
}

func legacyShotsSide(ls *legacyLinescore, home bool) legacyShots {
	if ls == nil || ls.Teams == nil {
		return legacyShots{}
	}
	if home {
		return ls.Teams.Home
	}
	return ls.Teams.Away
}

var (
	_ providers.GameProvider = (*LegacyClient)(nil)
	_ providers.Gated        = (*LegacyClient)(nil)
)
