package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/logging"
	"github.com/mirrormods/scores-data-service/internal/providers"
	"github.com/mirrormods/scores-data-service/internal/timeutil"
)

const defaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// sportPaths maps a league onto ESPN's sport/league URL segment.
var sportPaths = map[domain.League]string{
	domain.LeagueNFL: "football/nfl",
	domain.LeagueNBA: "basketball/nba",
}

// Client reads ESPN's site scoreboard API for one league. The NBA fetch is a
// single-date call; the NFL fetch windows over the Thursday-through-Monday
// game week, deduplicating events that appear on more than one day.
type Client struct {
	league     domain.League
	baseURL    string
	httpClient providers.Doer
	logger     *slog.Logger
	clock      clockwork.Clock
	location   *time.Location
}

type Config struct {
	League     domain.League
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Clock      clockwork.Clock
	Location   *time.Location
}

func New(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Client{
		league:     cfg.League,
		baseURL:    strings.TrimRight(base, "/"),
		httpClient: providers.ResolveHTTPClient(cfg.HTTPClient),
		logger:     cfg.Logger,
		clock:      clock,
		location:   cfg.Location,
	}
}

func (c *Client) Source() string { return "espn-" + string(c.league) }

func (c *Client) FetchGames(ctx context.Context, date string) (providers.Result, error) {
	if c.league == domain.LeagueNFL {
		return c.fetchWeek(ctx)
	}
	return c.fetchDate(ctx, date)
}

func (c *Client) fetchDate(ctx context.Context, date string) (providers.Result, error) {
	payload, err := c.getScoreboard(ctx, date)
	if err != nil {
		return providers.Result{}, err
	}

	var result providers.Result
	for _, ev := range payload.Events {
		result.Games = append(result.Games, mapEvent(ev, c.league))
	}
	return result, nil
}

// fetchWeek aggregates the NFL game week. Individual day failures only drop
// that day; the fetch fails outright when no day could be read.
func (c *Client) fetchWeek(ctx context.Context) (providers.Result, error) {
	dates := timeutil.NFLWeekDates(c.clock.Now(), c.location)

	var result providers.Result
	seen := make(map[string]bool)
	byes := make(map[string]bool)
	var fetched bool
	var lastErr error

	for _, date := range dates {
		payload, err := c.getScoreboard(ctx, date)
		if err != nil {
			lastErr = err
			logging.Error(c.logger, "week day fetch failed", err,
				slog.String(logging.FieldSource, c.Source()),
				slog.String(logging.FieldDate, date))
			continue
		}
		fetched = true

		for _, ev := range payload.Events {
			key := ev.ID
			if key == "" {
				key = ev.UID
			}
			if key != "" {
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			result.Games = append(result.Games, mapEvent(ev, c.league))
		}
		// Bye lists accumulate across the week's responses; any day may
		// carry a partial list.
		for _, team := range mapByeTeams(payload.Week) {
			key := team.Abbreviation
			if key == "" {
				key = team.ID
			}
			if key == "" || byes[key] {
				continue
			}
			byes[key] = true
			result.TeamsOnBye = append(result.TeamsOnBye, team)
		}
	}

	if !fetched {
		return providers.Result{}, fmt.Errorf("nfl week fetch: %w", lastErr)
	}

	sort.SliceStable(result.Games, func(i, j int) bool {
		return result.Games[i].StartTime < result.Games[j].StartTime
	})
	return result, nil
}

func (c *Client) getScoreboard(ctx context.Context, date string) (*scoreboardResponse, error) {
	url := fmt.Sprintf("%s/%s/scoreboard?dates=%s",
		c.baseURL, sportPaths[c.league], timeutil.CompactDate(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.UpstreamError{
			Source:     c.Source(),
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

var _ providers.GameProvider = (*Client)(nil)
