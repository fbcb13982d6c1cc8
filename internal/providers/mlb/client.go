package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mirrormods/scores-data-service/internal/logging"
	"github.com/mirrormods/scores-data-service/internal/providers"
	"github.com/mirrormods/scores-data-service/internal/timeutil"
)

const defaultBaseURL = "https://statsapi.mlb.com/api/v1"

// Config controls how the MLB client reaches the stats API.
type Config struct {
	BaseURL          string
	HTTPClient       *http.Client
	Logger           *slog.Logger
	IncludeStandings bool
}

// Client fetches the MLB schedule (and optionally standings) and maps them to
// domain models.
type Client struct {
	baseURL          string
	httpClient       providers.Doer
	logger           *slog.Logger
	includeStandings bool
}

// New constructs an MLB client with the provided configuration.
func New(cfg Config) *Client {
	return &Client{
		baseURL:          normalizeBaseURL(cfg.BaseURL),
		httpClient:       providers.ResolveHTTPClient(cfg.HTTPClient),
		logger:           cfg.Logger,
		includeStandings: cfg.IncludeStandings,
	}
}

func (c *Client) Source() string { return sourceName }

// FetchGames retrieves the schedule for the given date. Standings failures
// never fail the schedule fetch; the games are the product, the standings an
// extra.
func (c *Client) FetchGames(ctx context.Context, date string) (providers.Result, error) {
	url := fmt.Sprintf("%s/schedule/games?sportId=1&date=%s&hydrate=linescore", c.baseURL, date)

	var payload scheduleResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return providers.Result{}, err
	}

	var result providers.Result
	for _, bucket := range payload.Dates {
		if bucket.Date != "" && bucket.Date != date {
			continue
		}
		for _, g := range bucket.Games {
			result.Games = append(result.Games, mapGame(g))
		}
	}

	if c.includeStandings {
		standings, err := c.fetchStandings(ctx, seasonForDate(date))
		if err != nil {
			logging.Error(c.logger, "standings fetch failed", err,
				slog.String(logging.FieldSource, sourceName))
		} else {
			result.Standings = standings
		}
	}

	return result, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.UpstreamError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func normalizeBaseURL(base string) string {
	if base == "" {
		return defaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

func seasonForDate(date string) int {
	if t, err := timeutil.ParseDate(date); err == nil {
		return t.Year()
	}
	return time.Now().UTC().Year()
}

var _ providers.GameProvider = (*Client)(nil)
