package experiments

import (
	"connect4/config"
	"connect4/engine"
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/player"
	"connect4/searcher"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Entrant describes a player of the tournament. Every strategy enters twice,
// as a player and as an opponent, so it can also meet a copy of itself.
type Entrant struct {
	Name     string
	Symbol   string
	Strategy searcher.Strategy
}

// Symbols keep the players and opponents apart on a shared grid.
var (
	playerSymbols   = [...]string{"a", "c", "f", "h", "j"}
	opponentSymbols = [...]string{"b", "d", "g", "i", "k"}
)

var strategyTitles = map[searcher.Strategy]string{
	searcher.Random:    "Random",
	searcher.Naive:     "Naive",
	searcher.Simple:    "Simple",
	searcher.Heuristic: "Heuristic",
	searcher.Minimax:   "Minimax",
	searcher.Human:     "Human",
}

type MatchUp struct {
	Player1 Entrant
	Player2 Entrant
}

// MatchUps lists every automated strategy against every stronger one, then
// every strategy against a copy of itself.
func MatchUps() []MatchUp {
	strategies := searcher.Automated()
	players := make([]Entrant, len(strategies))
	opponents := make([]Entrant, len(strategies))
	for i, s := range strategies {
		players[i] = Entrant{Name: strategyTitles[s] + " Player", Symbol: playerSymbols[i], Strategy: s}
		opponents[i] = Entrant{Name: strategyTitles[s] + " Opponent", Symbol: opponentSymbols[i], Strategy: s}
	}

	matchUps := []MatchUp{}
	for i := range players {
		for j := i + 1; j < len(players); j++ {
			matchUps = append(matchUps, MatchUp{Player1: players[i], Player2: players[j]})
		}
	}
	for i := range players {
		matchUps = append(matchUps, MatchUp{Player1: players[i], Player2: opponents[i]})
	}
	return matchUps
}

// Tournament plays every match up with fresh players on its own grid.
// Up to cfg.Workers matches run at the same time. Results keep the order of
// the match ups, an aborted match is logged and the others still run.
func Tournament(cfg config.Config, matchUps []MatchUp) ([]*engine.Match, error) {
	log.Info().Msgf("starting tournament of %d match ups with %d workers...", len(matchUps), cfg.Workers)

	matches := make([]*engine.Match, len(matchUps))
	for i, matchUp := range matchUps {
		// Two seeds per match so that no two searchers share a sequence
		m, err := newMatch(cfg, matchUp, cfg.Seed, uint64(2*i), nil)
		if err != nil {
			return nil, errors.Wrapf(err, "match up %d", i+1)
		}
		matches[i] = m
	}

	jobs := make(chan *engine.Match)
	var wg sync.WaitGroup
	for w := 0; w < max(cfg.Workers, 1); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				if err := m.Play(); err != nil {
					log.Warn().Str("match", m.ID.String()).Msg("continuing with the next match")
				}
			}
		}()
	}
	for _, m := range matches {
		jobs <- m
	}
	close(jobs)
	wg.Wait()

	log.Info().Msg("completed all matches")
	return matches, nil
}

// SingleMatch plays one match between two strategies, asking prompter for
// the moves of a human player.
func SingleMatch(cfg config.Config, s1, s2 searcher.Strategy, prompter searcher.Prompter) (*engine.Match, error) {
	matchUp := MatchUp{
		Player1: Entrant{Name: strategyTitles[s1] + " Player", Symbol: "X", Strategy: s1},
		Player2: Entrant{Name: strategyTitles[s2] + " Opponent", Symbol: "O", Strategy: s2},
	}
	m, err := newMatch(cfg, matchUp, cfg.Seed, 0, prompter)
	if err != nil {
		return nil, err
	}
	return m, m.Play()
}

func newMatch(cfg config.Config, matchUp MatchUp, seed, offset uint64, prompter searcher.Prompter) (*engine.Match, error) {
	grid, err := game.NewGrid(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}

	entrants := []Entrant{matchUp.Player1, matchUp.Player2}
	players := make([]*player.Player, len(entrants))
	searchers := make([]*searcher.Searcher, len(entrants))
	for i, entrant := range entrants {
		players[i], err = player.New(entrant.Name, entrant.Symbol, entrant.Strategy)
		if err != nil {
			return nil, err
		}
		searchers[i], err = searcher.New(entrant.Strategy, searcherOptions(seed, offset+uint64(i), prompter)...)
		if err != nil {
			return nil, errors.Wrapf(err, "searcher for %s", entrant.Name)
		}
	}

	e, err := engine.NewGame(grid, players, searchers)
	if err != nil {
		return nil, err
	}
	return engine.NewMatch(e, cfg.GamesPerMatch), nil
}

func searcherOptions(seed, offset uint64, prompter searcher.Prompter) []searcher.Option {
	options := []searcher.Option{searcher.WithMetrics()}
	if seed != 0 {
		options = append(options, searcher.WithSeed(seed+offset))
	}
	if prompter != nil {
		options = append(options, searcher.WithPrompter(prompter))
	}
	return options
}

// Summaries collects the results of every match in order.
func Summaries(matches []*engine.Match) []metrics.MatchSummary {
	summaries := make([]metrics.MatchSummary, len(matches))
	for i, m := range matches {
		summaries[i] = m.Summary()
	}
	return summaries
}

// Report writes the results of matches in the configured format.
func Report(w *metrics.Writer, format string, matches []*engine.Match) error {
	switch format {
	case config.FormatCSV:
		return w.WriteMatchSummaries(Summaries(matches))
	case config.FormatGames:
		records := []metrics.GameRecord{}
		for _, m := range matches {
			records = append(records, m.GameRecords()...)
		}
		return w.WriteGameRecords(records)
	case config.FormatMoves:
		records := []metrics.MoveRecord{}
		for _, m := range matches {
			records = append(records, m.MoveRecords()...)
		}
		return w.WriteMoveRecords(records)
	default:
		return w.WriteReport(Summaries(matches))
	}
}
