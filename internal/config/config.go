// Package config loads the application-level configuration from the
// environment. Per-component tunables keep their own loaders next to the
// component; this package covers what main needs to wire everything up.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"crisp.sqlite"`

	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`

	UploadDir        string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	UploadMaxAge     time.Duration `env:"UPLOAD_MAX_AGE" envDefault:"1h"`
	SummaryWordLimit int           `env:"SUMMARY_WORD_LIMIT" envDefault:"800"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Version         string        `env:"APP_VERSION" envDefault:"dev"`
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if cfg.SummaryWordLimit <= 0 {
		return nil, fmt.Errorf("Load: SUMMARY_WORD_LIMIT must be positive, got %d", cfg.SummaryWordLimit)
	}
	return &cfg, nil
}

// UsePostgres reports whether a Postgres connection string was configured.
// Without one the service falls back to the embedded SQLite store.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}
