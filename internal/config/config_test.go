package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "HIGHSCORE_BACKEND", "HIGHSCORE_FILE", "HIGHSCORE_DB", "METRICS_TEXTFILE", "RANDOM_SEED"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "file", cfg.HighScoreBackend)
	assert.Equal(t, "high_score.txt", cfg.HighScoreFile)
	assert.Equal(t, "./data/numguess.db", cfg.HighScoreDB)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.Zero(t, cfg.RandomSeed)
}

func TestLoadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HIGHSCORE_BACKEND", "sqlite")
	t.Setenv("HIGHSCORE_DB", "/tmp/x.db")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("METRICS_TEXTFILE", "/tmp/numguess.prom")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.HighScoreBackend)
	assert.Equal(t, "/tmp/x.db", cfg.HighScoreDB)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, "/tmp/numguess.prom", cfg.MetricsTextfile)
}

func TestLoadRejectsBadSeed(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RANDOM_SEED", "forty-two")
	_, err := Load()
	require.Error(t, err)
}

func TestConfigureLogging(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	ConfigureLogging(Config{LogLevel: "debug"}, &buf)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	log.Debug().Str("round", "r1").Msg("round started")
	assert.Contains(t, buf.String(), "round started")
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
