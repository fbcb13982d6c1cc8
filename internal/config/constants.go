package config

import "time"

const (
	envPort         = "PORT"
	envWidgetConfig = "WIDGET_CONFIG"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "4000"
	defaultWidgetConfig = "widget.yaml"
	defaultSnapshotDir  = "data/payloads"
	defaultMetricsPort  = "9090"

	// Upstream APIs are public and unauthenticated; the score poll is
	// clamped so a misconfigured widget cannot hammer them.
	minUpdateInterval     = 10 * time.Second
	defaultUpdateInterval = 60 * time.Second
	defaultRotateInterval = 15 * time.Second

	defaultTimeZone = "America/Chicago"
	defaultMaxWidth = "800px"

	minLayoutScale     = 0.6
	maxLayoutScale     = 1.4
	defaultLayoutScale = 1.0
)
