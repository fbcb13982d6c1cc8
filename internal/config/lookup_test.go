package config

import (
	"testing"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

func TestValueForLeaguePrecedence(t *testing.T) {
	opts := map[string]any{
		"scoreboardColumns_nhl": 3,
		"scoreboardColumns": map[string]any{
			"nhl":     4,
			"default": 5,
		},
	}

	// Suffix key beats the map-valued key.
	if v, ok := ValueForLeague(opts, "scoreboardColumns", domain.LeagueNHL); !ok || v != 3 {
		t.Fatalf("nhl = %v, %v; want suffix value 3", v, ok)
	}
	// Leagues without a suffix key fall through to the map's default.
	if v, ok := ValueForLeague(opts, "scoreboardColumns", domain.LeagueMLB); !ok || v != 5 {
		t.Fatalf("mlb = %v, %v; want map default 5", v, ok)
	}
}

func TestValueForLeagueMapBeatsPlain(t *testing.T) {
	opts := map[string]any{
		"gamesPerPage": map[string]any{"nfl": 6},
	}
	if v, ok := ValueForLeague(opts, "gamesPerPage", domain.LeagueNFL); !ok || v != 6 {
		t.Fatalf("nfl = %v, %v", v, ok)
	}
	// No league entry and no default: key does not resolve.
	if _, ok := ValueForLeague(opts, "gamesPerPage", domain.LeagueMLB); ok {
		t.Fatal("expected no value for mlb")
	}
}

func TestValueForLeaguePlainKey(t *testing.T) {
	opts := map[string]any{"gamesPerPage": 8}
	if v, ok := ValueForLeague(opts, "gamesPerPage", domain.LeagueNBA); !ok || v != 8 {
		t.Fatalf("plain = %v, %v", v, ok)
	}
}

func TestValueForLeagueAliases(t *testing.T) {
	// The canonical key is consulted before any alias.
	opts := map[string]any{
		"scoreboardRows": 9,
		"rowsPerColumn":  7,
	}
	if v, ok := ValueForLeague(opts, "gamesPerColumn", domain.LeagueNHL); !ok || v != 9 {
		t.Fatalf("alias order = %v, %v; want scoreboardRows value 9", v, ok)
	}

	opts = map[string]any{"rowsPerColumn": 7}
	if v, ok := ValueForLeague(opts, "gamesPerColumn", domain.LeagueNHL); !ok || v != 7 {
		t.Fatalf("second alias = %v, %v", v, ok)
	}
}

func TestValueForLeagueCaseInsensitiveMapKeys(t *testing.T) {
	opts := map[string]any{
		"gamesPerColumn": map[string]any{"NHL": 6},
	}
	if v, ok := ValueForLeague(opts, "gamesPerColumn", domain.LeagueNHL); !ok || v != 6 {
		t.Fatalf("uppercase map key = %v, %v", v, ok)
	}
}

func TestIntForLeagueCoercesStrings(t *testing.T) {
	opts := map[string]any{"scoreboardColumns": "3"}
	if v, ok := IntForLeague(opts, "scoreboardColumns", domain.LeagueMLB); !ok || v != 3 {
		t.Fatalf("coerced = %d, %v", v, ok)
	}
}
