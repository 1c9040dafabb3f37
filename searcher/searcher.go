package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var ErrNoPrompter = errors.New("human strategy needs a prompter")

type Option func(s *Searcher)

// Searcher picks columns for one player with a fixed Strategy.
//
// A search borrows the grid for the duration of FindMove and leaves it exactly
// as it found it. A Searcher owns its random source, so it must not be shared
// between goroutines.
type Searcher struct {
	strategy Strategy
	rng      *rand.Rand
	prompter Prompter
	metrics  metrics.Collector
}

func WithSeed(seed uint64) Option {
	return func(s *Searcher) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(s *Searcher) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithPrompter(prompter Prompter) Option {
	return func(s *Searcher) {
		if prompter != nil {
			s.prompter = prompter
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = metrics.NewCollector()
	}
}

func New(strategy Strategy, options ...Option) (*Searcher, error) {
	s := &Searcher{ // Default values
		strategy: strategy,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	switch strategy {
	case Random, Naive, Simple, Heuristic, Minimax:
	case Human:
		if s.prompter == nil {
			return nil, ErrNoPrompter
		}
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(strategy))
	}
	return s, nil
}

func (s *Searcher) Strategy() Strategy {
	return s.strategy
}

// FindMove returns the column the strategy plays for symbol against opponent,
// along with the search metrics if collected. It fails with game.ErrNoLegalMove
// on a full grid.
func (s *Searcher) FindMove(g *game.Grid, symbol, opponent game.Symbol) (int, metrics.SearchMetric, error) {
	s.metrics.Start(s.strategy.String())

	var column int
	var err error
	switch s.strategy {
	case Random:
		column, err = randomMove(g, s.rng)
	case Naive:
		column, err = naiveMove(g, symbol, opponent, s.rng, s.metrics)
	case Simple:
		column, err = greedyMove(g, symbol, opponent, s.metrics)
	case Heuristic:
		column, err = bestImmediateHeuristic(g, symbol, opponent, s.metrics)
	case Minimax:
		column, err = shallowTreeMove(g, symbol, opponent, s.metrics)
	case Human:
		column, err = humanMove(g, s.prompter)
	default:
		err = errors.Wrapf(ErrUnknownStrategy, "strategy %d", int(s.strategy))
	}
	if err != nil {
		return -1, metrics.SearchMetric{}, err
	}

	return column, s.metrics.Complete(column), nil
}

func noLegalMove(g *game.Grid) error {
	return errors.Wrapf(game.ErrNoLegalMove, "grid is full after %d moves", g.NumMoves())
}
