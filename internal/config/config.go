// Package config centralises configuration parsing for the tracker CLI.
package config

import "os"

// Config captures runtime configuration values for the tracker.
type Config struct {
	// InputPath is the default packages file; the --input flag overrides it.
	// Empty means the built-in sample batch.
	InputPath string
	// MetricsAddress enables a Prometheus listener when set, e.g. ":9100".
	// Empty disables it.
	MetricsAddress string
}

// Load reads environment variables into Config.
func Load() Config {
	return Config{
		InputPath:      getEnv("TRACKER_INPUT", ""),
		MetricsAddress: getEnv("METRICS_ADDRESS", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
