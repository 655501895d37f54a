package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,          default=8080"`
	Env       string `env:"ENV,           default=development"`
	LogLevel  string `env:"LOG_LEVEL,     default=info"`
	LogPretty bool   `env:"LOG_PRETTY,    default=false"`

	DatabaseURL string `env:"DATABASE_URL, required"`
	SeedPath    string `env:"SEED_PATH,    default=data/seeds/stops.json"`

	Routing RoutingConfig
	Tour    TourConfig
}

type RoutingConfig struct {
	// BaseURL of the external routing service (OSRM-compatible).
	BaseURL string `env:"ROUTING_BASE_URL, default=https://router.project-osrm.org"`
	// CallIntervalMS bounds the external call rate; one token every interval.
	CallIntervalMS int `env:"ROUTING_CALL_INTERVAL_MS, default=200"`
}

type TourConfig struct {
	// GapThresholdDays is the default segmentation threshold.
	GapThresholdDays int `env:"TOUR_GAP_THRESHOLD_DAYS, default=2"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}
