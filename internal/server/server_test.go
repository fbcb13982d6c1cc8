package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mirrormods/scores-data-service/internal/config"
	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/metrics"
	"github.com/mirrormods/scores-data-service/internal/snapshots"
)

func testServer(t *testing.T, widget config.Widget) *Server {
	t.Helper()
	cfg := config.Config{Port: "0", SnapshotDir: t.TempDir()}
	return newServerWithMetrics(cfg, widget, nil, metrics.NewRecorder())
}

func TestServerServesHealthBeforeFirstPoll(t *testing.T) {
	s := testServer(t, config.Widget{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	// No poll has succeeded yet, so the service reports degraded.
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503 before first poll", rr.Code)
	}
}

func TestServerBuildsPollerPerConfiguredLeague(t *testing.T) {
	s := testServer(t, config.Widget{Leagues: config.LeagueList{"mlb", "nhl"}})

	if len(s.pollers) != 2 {
		t.Fatalf("pollers = %d, want 2", len(s.pollers))
	}
}

func TestServerWarmsCacheFromSnapshots(t *testing.T) {
	dir := t.TempDir()
	writer := snapshots.NewWriter(dir)
	payload := domain.Payload{
		League:  domain.LeagueMLB,
		Games:   []domain.Game{{ID: "1", League: domain.LeagueMLB}},
		Updated: time.Date(2025, 6, 14, 18, 0, 0, 0, time.UTC),
	}
	if err := writer.WritePayload(payload); err != nil {
		t.Fatalf("seed snapshot: %v", err)
	}

	cfg := config.Config{Port: "0", SnapshotDir: dir}
	s := newServerWithMetrics(cfg, config.Widget{}, nil, metrics.NewRecorder())

	req := httptest.NewRequest(http.MethodGet, "/games/mlb", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 from warmed cache", rr.Code)
	}
	var got domain.Payload
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Games) != 1 || got.Games[0].ID != "1" {
		t.Fatalf("payload = %+v", got)
	}
}

func TestServerViewEndpointServesRotation(t *testing.T) {
	s := testServer(t, config.Widget{})

	req := httptest.NewRequest(http.MethodGet, "/view", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	var got struct {
		League domain.League `json:"league"`
		Kind   string        `json:"kind"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.League != domain.LeagueMLB || got.Kind != "scoreboard" {
		t.Fatalf("view = %+v", got)
	}
}
