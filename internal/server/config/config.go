package config

import (
	"context"
	"log/slog"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3001"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// DatabaseDSN selects the Postgres store. When empty the server runs
	// on the in-memory store, which is what local client development uses.
	DatabaseDSN string `env:"DATABASE_DSN"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger *slog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error("failed to load configuration", "error", err)
		panic(err)
	}
	return &cfg
}
