package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var keys = []string{"BOARD_ROWS", "BOARD_COLUMNS", "GAMES_PER_MATCH", "SEED", "WORKERS", "LOG_LEVEL", "REPORT_FORMAT"}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, Config{
			Rows:          6,
			Columns:       7,
			GamesPerMatch: 100,
			Seed:          0,
			Workers:       1,
			LogLevel:      "info",
			ReportFormat:  FormatText,
		}, cfg)
	})

	t.Run("environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BOARD_ROWS", "8")
		t.Setenv("BOARD_COLUMNS", "9")
		t.Setenv("SEED", "42")
		t.Setenv("WORKERS", "4")
		t.Setenv("REPORT_FORMAT", "CSV")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		require.Equal(t, 8, cfg.Rows)
		require.Equal(t, 9, cfg.Columns)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, 4, cfg.Workers)
		require.Equal(t, FormatCSV, cfg.ReportFormat)
	})

	t.Run("env file does not override the environment", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("GAMES_PER_MATCH=10\nLOG_LEVEL=debug\n"), 0o644))
		t.Setenv("LOG_LEVEL", "warn")
		t.Cleanup(func() { os.Unsetenv("GAMES_PER_MATCH") })

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 10, cfg.GamesPerMatch)
		require.Equal(t, "warn", cfg.LogLevel)
	})

	t.Run("invalid values", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("WORKERS", "0")
		_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, ErrInvalidConfig)

		t.Setenv("WORKERS", "2")
		t.Setenv("REPORT_FORMAT", "xml")
		_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("CONNECT4_TEST", "")
	require.Equal(t, "fallback", GetEnv("CONNECT4_TEST", "fallback"))
	require.Equal(t, 3, GetEnvAsInt("CONNECT4_TEST", 3))

	t.Setenv("CONNECT4_TEST", "seven")
	require.Equal(t, 3, GetEnvAsInt("CONNECT4_TEST", 3), "Invalid integers should fall back")
	require.Equal(t, int64(5), GetEnvAsInt64("CONNECT4_TEST", 5))

	t.Setenv("CONNECT4_TEST", "12345678901")
	require.Equal(t, int64(12345678901), GetEnvAsInt64("CONNECT4_TEST", 5))
}
