package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envPort, "")
	t.Setenv(envSnapshotDir, "")
	t.Setenv(envMetricsPort, "")

	cfg := Load()
	if cfg.Port != "4000" {
		t.Fatalf("port = %s", cfg.Port)
	}
	if cfg.SnapshotDir != "data/payloads" {
		t.Fatalf("snapshot dir = %s", cfg.SnapshotDir)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != "9090" {
		t.Fatalf("metrics = %+v", cfg.Metrics)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(envPort, "8088")
	t.Setenv(envSnapshotDir, "/tmp/payloads")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()
	if cfg.Port != "8088" {
		t.Fatalf("port = %s", cfg.Port)
	}
	if cfg.SnapshotDir != "/tmp/payloads" {
		t.Fatalf("snapshot dir = %s", cfg.SnapshotDir)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestBoolEnvParsing(t *testing.T) {
	cases := map[string]bool{
		"1": true, "true": true, "YES": true,
		"0": false, "false": false, "no": false,
		"sometimes": true, // unparseable keeps the default
	}
	for raw, want := range cases {
		t.Setenv(envMetricsOn, raw)
		if got := boolEnvOrDefault(envMetricsOn, true); got != want {
			t.Fatalf("boolEnvOrDefault(%q) = %v, want %v", raw, got, want)
		}
	}
}
