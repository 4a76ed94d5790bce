package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)

	assert.Equal(t, 2.0, cfg.Policy.OvertimeAlertHours)
	assert.Equal(t, 1.0, cfg.Policy.LateAlertHours)
	assert.Equal(t, 1.0, cfg.Policy.EarlyExitAlertHours)
	assert.Equal(t, 0.0, cfg.Policy.DefaultBreakMinutes)
	assert.Equal(t, 8.0, cfg.Policy.DefaultExpectedHours)
	assert.Equal(t, 5, cfg.Policy.TopN)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := writeConfigFile(t, `
logging:
  level: debug
policy:
  late_alert_hours: 0.5
  top_n: 3
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format, "unset keys keep their defaults")
	assert.Equal(t, 0.5, cfg.Policy.LateAlertHours)
	assert.Equal(t, 3, cfg.Policy.TopN)
	assert.Equal(t, 2.0, cfg.Policy.OvertimeAlertHours)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `
policy:
  top_n: 3
`)
	t.Setenv("ATTEND_POLICY_TOP_N", "10")
	t.Setenv("ATTEND_LOGGING_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Policy.TopN)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad log level", yaml: "logging:\n  level: loud\n"},
		{name: "bad log format", yaml: "logging:\n  format: xml\n"},
		{name: "negative threshold", yaml: "policy:\n  late_alert_hours: -1\n"},
		{name: "zero expected hours", yaml: "policy:\n  default_expected_hours: 0\n"},
		{name: "zero top n", yaml: "policy:\n  top_n: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfigFile(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("ATTEND_POLICY_TOP_N", "many")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from env")
}
