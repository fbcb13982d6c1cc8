package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

func writeWidgetFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widget.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write widget config: %v", err)
	}
	return path
}

func TestLoadWidgetParsesTypedAndInlineKeys(t *testing.T) {
	path := writeWidgetFile(t, `
leagues: "mlb, nhl"
timeZone: America/Chicago
updateIntervalScores: 30s
rotateIntervalScores: 15000
layoutScale: 1.2
showNhlStandings: true
scoreboardColumns_nhl: 3
gamesPerColumn:
  nhl: 5
  default: 2
`)
	w, err := LoadWidget(path)
	if err != nil {
		t.Fatalf("LoadWidget: %v", err)
	}

	leagues := w.ConfiguredLeagues()
	if len(leagues) != 2 || leagues[0] != domain.LeagueMLB || leagues[1] != domain.LeagueNHL {
		t.Fatalf("leagues = %v", leagues)
	}
	if got := w.UpdateInterval(); got != 30*time.Second {
		t.Fatalf("update interval = %v", got)
	}
	// Bare numbers are milliseconds.
	if got := w.RotateInterval(); got != 15*time.Second {
		t.Fatalf("rotate interval = %v", got)
	}
	if got := w.Scale(); got != 1.2 {
		t.Fatalf("scale = %v", got)
	}
	if !w.ShowStandings(domain.LeagueNHL) {
		t.Fatal("expected NHL standings enabled")
	}
	if w.ShowStandings(domain.LeagueMLB) {
		t.Fatal("MLB must not rotate standings pages")
	}

	if v, ok := IntForLeague(w.Rest, "scoreboardColumns", domain.LeagueNHL); !ok || v != 3 {
		t.Fatalf("scoreboardColumns_nhl = %d, %v", v, ok)
	}
	if v, ok := IntForLeague(w.Rest, "gamesPerColumn", domain.LeagueNHL); !ok || v != 5 {
		t.Fatalf("gamesPerColumn[nhl] = %d, %v", v, ok)
	}
	if v, ok := IntForLeague(w.Rest, "gamesPerColumn", domain.LeagueMLB); !ok || v != 2 {
		t.Fatalf("gamesPerColumn default = %d, %v", v, ok)
	}
}

func TestLoadWidgetMissingFileYieldsDefaults(t *testing.T) {
	w, err := LoadWidget(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadWidget: %v", err)
	}
	if got := w.ConfiguredLeagues(); len(got) != 1 || got[0] != domain.LeagueMLB {
		t.Fatalf("default leagues = %v", got)
	}
	if got := w.UpdateInterval(); got != 60*time.Second {
		t.Fatalf("default update interval = %v", got)
	}
	if got := w.RotateInterval(); got != 15*time.Second {
		t.Fatalf("default rotate interval = %v", got)
	}
	if got := w.MaxWidthValue(); got != "800px" {
		t.Fatalf("default max width = %s", got)
	}
}

func TestUpdateIntervalClampedToMinimum(t *testing.T) {
	path := writeWidgetFile(t, "updateIntervalScores: 2s\n")
	w, err := LoadWidget(path)
	if err != nil {
		t.Fatalf("LoadWidget: %v", err)
	}
	if got := w.UpdateInterval(); got != 10*time.Second {
		t.Fatalf("clamped interval = %v, want 10s", got)
	}
}

func TestScaleClamps(t *testing.T) {
	cases := []struct {
		raw  float64
		want float64
	}{
		{raw: 0, want: 1},
		{raw: -3, want: 1},
		{raw: 0.2, want: 0.6},
		{raw: 2.5, want: 1.4},
		{raw: 1.1, want: 1.1},
	}
	for _, tc := range cases {
		w := Widget{LayoutScale: tc.raw}
		if got := w.Scale(); got != tc.want {
			t.Fatalf("Scale(%v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	w := Widget{TimeZone: "Not/AZone"}
	if got := w.Location(); got != time.UTC {
		t.Fatalf("location = %v, want UTC", got)
	}
}
