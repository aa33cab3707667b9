// apps/go-cli/internal/config/config.go
//
// Environment configuration. A .env file in the working directory is loaded
// first when present; real environment variables win over it.

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// WordsFile is the word source; empty uses the embedded list.
	WordsFile  string `env:"WORDS_FILE"`
	HistoryDir string `env:"HISTORY_DIR" envDefault:"trackers"`
	// HistoryDB enables the SQLite transcript log when set.
	HistoryDB string `env:"HISTORY_DB"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`

	MaxInvalidResponses int    `env:"MAX_INVALID_RESPONSES" envDefault:"3"`
	ShowSecret          bool   `env:"SHOW_SECRET" envDefault:"false"`
	Seed                uint64 `env:"WORDLE_SEED" envDefault:"0"`
	DailySalt           string `env:"DAILY_SALT" envDefault:"local_dev_salt"`

	HTTPAddr  string `env:"HTTP_ADDR" envDefault:":5175"`
	JWTSecret string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
}

// Load reads .env (if any) and parses the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.MaxInvalidResponses < 1 {
		return nil, fmt.Errorf("MAX_INVALID_RESPONSES must be at least 1, got %d", cfg.MaxInvalidResponses)
	}
	return &cfg, nil
}
