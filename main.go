package main

import (
	"connect4/config"
	"connect4/engine"
	"connect4/experiments"
	"connect4/experiments/metrics"
	"connect4/searcher"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	rows := flag.Int("rows", cfg.Rows, "Number of board rows (at least 6)")
	cols := flag.Int("cols", cfg.Columns, "Number of board columns (at least 7)")
	games := flag.Int("games", cfg.GamesPerMatch, "Number of games per match")
	seed := flag.Uint64("seed", cfg.Seed, "Seed for the random strategies, 0 for a time based seed")
	workers := flag.Int("workers", cfg.Workers, "Number of matches played concurrently")
	format := flag.String("format", cfg.ReportFormat, "Report format: text, csv, games or moves")
	p1 := flag.String("p1", "", "Strategy of player 1 for a single match: "+strategyList())
	p2 := flag.String("p2", "", "Strategy of player 2 for a single match")
	flag.Parse()

	cfg.Rows, cfg.Columns, cfg.GamesPerMatch = *rows, *cols, *games
	cfg.Seed, cfg.Workers, cfg.ReportFormat = *seed, *workers, strings.ToLower(*format)
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid flags")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", cfg.LogLevel)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var matches []*engine.Match
	if *p1 != "" || *p2 != "" {
		matches, err = runSingleMatch(cfg, *p1, *p2)
	} else {
		matches, err = experiments.Tournament(cfg, experiments.MatchUps())
	}
	if err != nil && len(matches) == 0 {
		log.Fatal().Err(err).Msg("failed to run")
	}

	if err := experiments.Report(metrics.NewWriter(os.Stdout), cfg.ReportFormat, matches); err != nil {
		log.Fatal().Err(err).Msg("failed to write report")
	}
}

// runSingleMatch plays p1 against p2, reading human moves from stdin. The
// match is returned even when it was aborted so its partial result is shown.
func runSingleMatch(cfg config.Config, p1, p2 string) ([]*engine.Match, error) {
	s1, err := searcher.ParseStrategy(p1)
	if err != nil {
		return nil, err
	}
	s2, err := searcher.ParseStrategy(p2)
	if err != nil {
		return nil, err
	}

	prompter := searcher.NewConsolePrompter("Human", os.Stdin, os.Stdout)
	m, err := experiments.SingleMatch(cfg, s1, s2, prompter)
	if m == nil {
		return nil, err
	}
	return []*engine.Match{m}, err
}

func strategyList() string {
	names := []string{}
	for _, s := range append(searcher.Automated(), searcher.Human) {
		names = append(names, s.String())
	}
	return fmt.Sprintf("one of %s", strings.Join(names, ", "))
}
