package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TRACKER_INPUT", "")
	t.Setenv("METRICS_ADDRESS", "")

	cfg := Load()
	require.Empty(t, cfg.InputPath)
	require.Empty(t, cfg.MetricsAddress)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRACKER_INPUT", "packages.yaml")
	t.Setenv("METRICS_ADDRESS", ":9100")

	cfg := Load()
	require.Equal(t, "packages.yaml", cfg.InputPath)
	require.Equal(t, ":9100", cfg.MetricsAddress)
}
