package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	// StateDir is where the session token and user profile are persisted.
	StateDir string `env:"STATE_DIR, default=.revelop"`
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=https://react-test.revelop.dev"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=15s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
