package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port" env:"ABBREV_SERVER_PORT"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr" env:"ABBREV_REDIS_ADDR"`
		Password string `yaml:"password" env:"ABBREV_REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"ABBREV_REDIS_DB"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url" env:"ABBREV_POSTGRES_URL"`
	} `yaml:"postgres"`
	States struct {
		TTL string `yaml:"ttl" env:"ABBREV_STATES_TTL"`
	} `yaml:"states"`
	Session struct {
		TTL string `yaml:"ttl" env:"ABBREV_SESSION_TTL"`
	} `yaml:"session"`
	Telemetry struct {
		Enabled bool `yaml:"enabled" env:"ABBREV_TELEMETRY_ENABLED"`
	} `yaml:"telemetry"`
	Game struct {
		// Seed fixes the random source; zero draws a fresh seed per process.
		Seed int64 `yaml:"seed" env:"ABBREV_GAME_SEED"`
	} `yaml:"game"`
}

// Load reads YAML config from path, then applies environment overrides.
// A missing file is not an error: defaults plus environment are used.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
