// Package config loads numguess settings from the environment.
//
// Values come from the process environment, optionally seeded from a .env
// file in the working directory. Existing variables are never overridden.
//
// Environment variables:
//
//	LOG_LEVEL          zerolog level (default "warn"; stdout is the game UI)
//	HIGHSCORE_BACKEND  file | sqlite | memory (default "file")
//	HIGHSCORE_FILE     path of the plain text high score (default "high_score.txt")
//	HIGHSCORE_DB       SQLite path for the sqlite backend (default "./data/numguess.db")
//	METRICS_TEXTFILE   write Prometheus metrics here on exit (default: disabled)
//	RANDOM_SEED        fixed seed for target selection (default 0: random)
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds all runtime settings.
type Config struct {
	LogLevel         string `env:"LOG_LEVEL" envDefault:"warn"`
	HighScoreBackend string `env:"HIGHSCORE_BACKEND" envDefault:"file"`
	HighScoreFile    string `env:"HIGHSCORE_FILE" envDefault:"high_score.txt"`
	HighScoreDB      string `env:"HIGHSCORE_DB" envDefault:"./data/numguess.db"`
	MetricsTextfile  string `env:"METRICS_TEXTFILE"`
	RandomSeed       int64  `env:"RANDOM_SEED" envDefault:"0"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ConfigureLogging points the global zerolog logger at w (stderr when nil)
// and applies the configured level. An unknown level keeps the current one.
func ConfigureLogging(cfg Config, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}
