package config

// Config holds the service-level runtime configuration read from the
// environment. Display-facing options live in the widget config file.
type Config struct {
	Port             string
	WidgetConfigPath string
	SnapshotDir      string
	Metrics          MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:             envOrDefault(envPort, defaultPort),
		WidgetConfigPath: envOrDefault(envWidgetConfig, defaultWidgetConfig),
		SnapshotDir:      envOrDefault(envSnapshotDir, defaultSnapshotDir),
		Metrics:          loadMetrics(),
	}
}
