package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrInvalidConfig = errors.New("invalid config")

// Report formats
const (
	FormatText  = "text"  // match results as plain text
	FormatCSV   = "csv"   // one CSV row per match
	FormatGames = "games" // one CSV row per game
	FormatMoves = "moves" // one CSV row per move
)

type Config struct {
	Rows          int
	Columns       int
	GamesPerMatch int
	Seed          uint64 // 0 seeds every searcher from the clock
	Workers       int    // matches played concurrently in a tournament
	LogLevel      string
	ReportFormat  string
}

// Load reads the optional .env files (./.env by default), then the
// environment. Variables already set in the environment win over the files.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "failed to load .env")
	}

	cfg := Config{
		Rows:          GetEnvAsInt("BOARD_ROWS", 6),
		Columns:       GetEnvAsInt("BOARD_COLUMNS", 7),
		GamesPerMatch: GetEnvAsInt("GAMES_PER_MATCH", 100),
		Seed:          uint64(GetEnvAsInt64("SEED", 0)),
		Workers:       GetEnvAsInt("WORKERS", 1),
		LogLevel:      strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		ReportFormat:  strings.ToLower(GetEnv("REPORT_FORMAT", FormatText)),
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings that are not checked where they are used.
// Board dimensions are left to game.NewGrid.
func (c Config) Validate() error {
	if c.GamesPerMatch < 1 {
		return errors.Wrapf(ErrInvalidConfig, "games per match must be positive, got %d", c.GamesPerMatch)
	}
	if c.Workers < 1 {
		return errors.Wrapf(ErrInvalidConfig, "workers must be positive, got %d", c.Workers)
	}
	switch c.ReportFormat {
	case FormatText, FormatCSV, FormatGames, FormatMoves:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown report format %q", c.ReportFormat)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
