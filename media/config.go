package media

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds operational limits for media fetching.
type Config struct {
	MaxFetchBytes int64         `envconfig:"MEDIA_MAX_FETCH_BYTES" default:"33554432"`
	FetchTimeout  time.Duration `envconfig:"MEDIA_FETCH_TIMEOUT" default:"30s"`
	UserAgent     string        `envconfig:"MEDIA_USER_AGENT" default:"easel-media/1.0"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load media config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		MaxFetchBytes: 32 << 20,
		FetchTimeout:  30 * time.Second,
		UserAgent:     "easel-media/1.0",
	}
}
