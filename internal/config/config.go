// internal/config/config.go
//
// Server configuration parsed from the environment (optionally seeded from .env by main).
// DB_PATH=memory runs the server on the in-memory KV with no daily tally.

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port          string `env:"PORT" envDefault:"5175"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	DBPath        string `env:"DB_PATH" envDefault:"data/landmark.db"`
	DailySalt     string `env:"DAILY_SALT" envDefault:"landmark-daily"`
	TimeZone      string `env:"TIME_ZONE" envDefault:"America/New_York"`
	LandmarksFile string `env:"LANDMARKS_FILE"`
	ShareURL      string `env:"SHARE_URL"`

	ClientOrigin   string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"dev-insecure-secret-change-me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME" envDefault:"landmark_token"`
	Production     bool   `env:"PRODUCTION" envDefault:"false"`
}

// MemoryDB is the DB_PATH value that selects the in-memory KV.
const MemoryDB = "memory"

// Load parses the process environment.
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.JWTExpiresDays <= 0 {
		return nil, fmt.Errorf("JWT_EXPIRES_DAYS must be positive, got %d", cfg.JWTExpiresDays)
	}
	return &cfg, nil
}

// InMemory reports whether persistence should stay in process memory.
func (c *Config) InMemory() bool { return c.DBPath == MemoryDB }

// Addr is the listen address.
func (c *Config) Addr() string { return ":" + c.Port }

// TokenTTL is the lifetime of account session tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}
