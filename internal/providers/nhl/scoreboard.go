package nhl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/providers"
	"github.com/mirrormods/scores-data-service/internal/resolve"
)

const defaultScoreboardBaseURL = "https://api-web.nhle.com/v1"

// ScoreboardClient reads the current-generation scoreboard API. Its payload
// shape drifts between deployments (games at the top level, under gameWeek,
// under dates, or nested one level down), so collection is structural rather
// than schema-bound.
type ScoreboardClient struct {
	baseURL    string
	httpClient providers.Doer
	logger     *slog.Logger
}

type ScoreboardConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewScoreboard(cfg ScoreboardConfig) *ScoreboardClient {
	base := cfg.BaseURL
	if base == "" {
		base = defaultScoreboardBaseURL
	}
	return &ScoreboardClient{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

func (c *ScoreboardClient) Source() string { return sourceScoreboard }

func (c *ScoreboardClient) FetchGames(ctx context.Context, date string) (providers.Result, error) {
	url := fmt.Sprintf("%s/scoreboard/%s", c.baseURL, date)

	var payload map[string]any
	if err := getJSON(ctx, c.httpClient, sourceScoreboard, url, &payload); err != nil {
		return providers.Result{}, err
	}

	var result providers.Result
	for _, raw := range collectScoreboardGames(payload, date, nil) {
		result.Games = append(result.Games, mapScoreboardGame(raw))
	}
	return result, nil
}

// collectScoreboardGames gathers game objects from every container the
// scoreboard payload is known to use, keeping only the target date and
// deduplicating by game id. The date-bucketed containers are collected
// before the top-level list: when a payload carries the same id in both,
// the bucket copy holds the full record (period, clock, teams) while the
// top-level one can be a skeleton.
func collectScoreboardGames(payload map[string]any, date string, seen map[string]bool) []map[string]any {
	if payload == nil {
		return nil
	}
	if seen == nil {
		seen = make(map[string]bool)
	}

	var games []map[string]any
	push := func(entries any) {
		list, ok := entries.([]any)
		if !ok {
			return
		}
		for _, entry := range list {
			game, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if d := entryDate(game, "gameDate", "startTimeUTC"); d != "" && d != date {
				continue
			}
			if id := resolve.FirstText(game["id"], game["gamePk"], game["gameId"]); id != "" {
				if seen[id] {
					continue
				}
				seen[id] = true
			}
			games = append(games, game)
		}
	}

	if week, ok := payload["gameWeek"].([]any); ok {
		for _, entry := range week {
			day, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if d := entryDate(day, "date", "gameDate"); d != "" && d != date {
				continue
			}
			push(day["games"])
		}
	}

	if dates, ok := payload["dates"].([]any); ok {
		for _, entry := range dates {
			bucket, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			if d := entryDate(bucket, "date", "gameDate"); d != "" && d != date {
				continue
			}
			push(bucket["games"])
		}
	}

	push(payload["games"])

	if nested, ok := payload["scoreboard"].(map[string]any); ok {
		games = append(games, collectScoreboardGames(nested, date, seen)...)
	}

	return games
}

// entryDate reads the first present date-ish key, truncated to YYYY-MM-DD.
func entryDate(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := resolve.Text(obj[key]); s != "" {
			if len(s) > 10 {
				return s[:10]
			}
			return s
		}
	}
	return ""
}

func mapScoreboardGame(raw map[string]any) domain.Game {
	pd := scoreboardPeriodDescriptor(raw)

	game := domain.Game{
		ID:        resolve.FirstText(raw["id"], raw["gamePk"], raw["gameId"]),
		League:    domain.LeagueNHL,
		StartTime: resolve.FirstText(raw["startTimeUTC"], raw["gameDate"]),
		Status:    mapState(resolve.Text(raw["gameState"]), resolve.Text(raw["gameScheduleState"]), pd),
		Away:      mapScoreboardTeam(raw["awayTeam"]),
		Home:      mapScoreboardTeam(raw["homeTeam"]),
	}
	markWinners(&game)
	return game
}

func scoreboardPeriodDescriptor(raw map[string]any) periodDescriptor {
	var pd periodDescriptor
	desc, _ := raw["periodDescriptor"].(map[string]any)
	if desc != nil {
		if n, ok := resolve.Int(desc["number"]); ok {
			pd.Number, pd.HasNumber = n, true
		}
		pd.Type = resolve.Text(desc["periodType"])
	}
	var remainingCandidates []any
	if desc != nil {
		remainingCandidates = append(remainingCandidates, desc["periodTimeRemaining"])
	}
	remainingCandidates = append(remainingCandidates, raw["clock"])
	pd.TimeRemaining = clockText(remainingCandidates...)
	return pd
}

func mapScoreboardTeam(value any) domain.TeamLine {
	team, _ := value.(map[string]any)
	if team == nil {
		return domain.TeamLine{}
	}

	abbr := strings.ToUpper(resolve.FirstText(
		team["teamAbbrev"], team["abbrev"], team["triCode"], team["teamCode"], team["shortName"]))
	place := resolve.FirstText(team["placeName"], team["locationName"], team["city"], team["market"])
	name := resolve.FirstText(team["teamName"], team["nickName"], team["name"])

	display := name
	if place != "" && name != "" {
		display = place + " " + name
	} else if display == "" {
		display = resolve.FirstText(place, abbr)
	}

	line := domain.TeamLine{
		Team: domain.TeamRef{
			ID:           resolve.Text(team["id"]),
			DisplayName:  display,
			Abbreviation: abbr,
		},
		Score: resolve.IntPtr(team["score"], team["goals"]),
	}
	if sog, ok := resolve.FindNumber(team, sogKeys, sogContainers); ok {
		line.ExtraStats = map[string]int{"sog": int(sog)}
	}
	return line
}

var _ providers.GameProvider = (*ScoreboardClient)(nil)
