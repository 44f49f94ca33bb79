package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port           string   `env:"PORT"             envDefault:"4000"`
	RosterFile     string   `env:"ROSTER_FILE"      envDefault:"team.csv"`
	VisitorLogFile string   `env:"VISITOR_LOG_FILE" envDefault:"userinfo.csv"`
	CORSOrigins    []string `env:"CORS_ORIGINS"     envDefault:"*" envSeparator:","`
	Log            LogConfig
	Metrics        MetricsConfig
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Parse reads configuration from environment variables, failing on malformed values.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Load reads configuration from environment variables, falling back to
// defaults when any value is malformed.
func Load() Config {
	cfg, err := Parse()
	if err != nil {
		return Defaults()
	}
	return cfg
}

// Defaults returns the configuration used when no environment is set.
func Defaults() Config {
	return Config{
		Port:           defaultPort,
		RosterFile:     defaultRosterFile,
		VisitorLogFile: defaultVisitorLogFile,
		CORSOrigins:    []string{"*"},
		Log:            LogConfig{Level: "info", Format: "text"},
		Metrics: MetricsConfig{
			Enabled:      true,
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}
}
