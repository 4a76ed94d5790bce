package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Policy  PolicyConfig  `yaml:"policy" envconfig:"POLICY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PolicyConfig contains the attendance compliance policy. These were fixed
// constants in the original report script; they are configuration here so the
// derivation rules stay tunable without a rebuild.
type PolicyConfig struct {
	// Alert thresholds, in hours. A daily compliance alert is raised when
	// any one of them is exceeded (or a punch is missing).
	OvertimeAlertHours  float64 `yaml:"overtime_alert_hours" envconfig:"OVERTIME_ALERT_HOURS" validate:"gte=0"`
	LateAlertHours      float64 `yaml:"late_alert_hours" envconfig:"LATE_ALERT_HOURS" validate:"gte=0"`
	EarlyExitAlertHours float64 `yaml:"early_exit_alert_hours" envconfig:"EARLY_EXIT_ALERT_HOURS" validate:"gte=0"`

	// Fallbacks for malformed or missing numeric input fields.
	DefaultBreakMinutes  float64 `yaml:"default_break_minutes" envconfig:"DEFAULT_BREAK_MINUTES" validate:"gte=0"`
	DefaultExpectedHours float64 `yaml:"default_expected_hours" envconfig:"DEFAULT_EXPECTED_HOURS" validate:"gt=0"`

	// TopN is the number of rows kept in each ranked insight view.
	TopN int `yaml:"top_n" envconfig:"TOP_N" validate:"min=1"`
}

// DefaultConfig returns the built-in configuration used when no file or
// environment overrides are present.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/report.log",
		},
		Policy: DefaultPolicy(),
	}
}

// DefaultPolicy returns the standard compliance policy: alerts above 2h
// overtime, 1h late arrival or 1h early exit, break fallback 0 minutes,
// expected-hours fallback 8, top-5 insight lists.
func DefaultPolicy() PolicyConfig {
	return PolicyConfig{
		OvertimeAlertHours:   2,
		LateAlertHours:       1,
		EarlyExitAlertHours:  1,
		DefaultBreakMinutes:  0,
		DefaultExpectedHours: 8,
		TopN:                 5,
	}
}

// Load builds the configuration in three layers: built-in defaults, an
// optional YAML file, then ATTEND_* environment variables. The result is
// validated before it is returned.
func Load(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	if configFile != "" {
		if err := loadFromFile(configFile, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process("ATTEND", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays configuration from a YAML file
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks the configuration against its struct constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
