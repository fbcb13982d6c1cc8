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

const defaultRestBaseURL = "https://api.nhle.com/stats/rest/en"

// RestClient reads the stats REST schedule, the last rung of the NHL chain.
// Its rows are flat objects with side-prefixed keys (awayTeamAbbrev,
// homeTeamScore, ...) whose exact names vary by deployment, so extraction
// goes through candidate lists.
type RestClient struct {
	baseURL    string
	httpClient providers.Doer
	logger     *slog.Logger
}

type RestConfig struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

func NewRest(cfg RestConfig) *RestClient {
	base := cfg.BaseURL
	if base == "" {
		base = defaultRestBaseURL
	}
	return &RestClient{
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
	}
}

func (c *RestClient) Source() string { return sourceRest }

func (c *RestClient) FetchGames(ctx context.Context, date string) (providers.Result, error) {
	url := fmt.Sprintf("%s/schedule?cayenneExp=gameDate=%%22%s%%22", c.baseURL, date)

	var payload struct {
		Data []map[string]any `json:"data"`
	}
	if err := getJSON(ctx, c.httpClient, sourceRest, url, &payload); err != nil {
		return providers.Result{}, err
	}

	var result providers.Result
	for _, row := range payload.Data {
		if row == nil {
			continue
		}
		result.Games = append(result.Games, mapRestGame(row))
	}
	return result, nil
}

func mapRestGame(row map[string]any) domain.Game {
	pd := periodDescriptor{
		Type:          resolve.Text(row["periodType"]),
		TimeRemaining: clockText(row["gameClock"]),
	}
	if n, ok := resolve.Int(row["period"]); ok {
		pd.Number, pd.HasNumber = n, true
	}

	game := domain.Game{
		ID:        resolve.FirstText(row["gamePk"], row["gameId"], row["id"]),
		League:    domain.LeagueNHL,
		StartTime: resolve.FirstText(row["startTimeUTC"], row["gameDate"]),
		Status:    mapState(resolve.Text(row["gameState"]), resolve.Text(row["gameScheduleState"]), pd),
		Away:      mapRestTeam(row, "away"),
		Home:      mapRestTeam(row, "home"),
	}
	markWinners(&game)
	return game
}

func mapRestTeam(row map[string]any, side string) domain.TeamLine {
	key := func(suffix string) any { return row[side+suffix] }

	abbr := strings.ToUpper(resolve.FirstText(
		key("TeamAbbrev"), key("TeamAbbreviation"), key("TeamTriCode"), key("TeamShortName")))
	location := resolve.FirstText(
		key("TeamPlaceName"), key("TeamLocation"), key("TeamCity"), key("TeamMarket"))
	name := resolve.FirstText(
		key("TeamCommonName"), key("TeamName"), key("TeamNickName"), key("TeamFullName"))

	display := name
	if location != "" && name != "" {
		display = location + " " + name
	} else if display == "" {
		display = resolve.FirstText(location, abbr)
	}

	line := domain.TeamLine{
		Team: domain.TeamRef{
			ID:           resolve.FirstText(key("TeamId"), key("TeamID")),
			DisplayName:  display,
			Abbreviation: abbr,
		},
		Score: resolve.IntPtr(key("TeamScore"), key("Score")),
	}
	if sog, ok := resolve.Int(
		key("TeamShotsOnGoal"), key("TeamSOG"), key("TeamShots"), key("ShotsOnGoal"), key("Shots")); ok {
		line.ExtraStats = map[string]int{"sog": sog}
	} else if sog, ok := resolve.FindNumber(key("Team"), sogKeys, sogContainers); ok {
		// Some deployments nest a team object under awayTeam/homeTeam
		// instead of flattening its stats into the row.
		line.ExtraStats = map[string]int{"sog": int(sog)}
	}
	return line
}

var _ providers.GameProvider = (*RestClient)(nil)
