package searcher

import (
	"strings"

	"github.com/pkg/errors"
)

// Strategy selects the move search a Searcher runs.
type Strategy int

const (
	Random    Strategy = iota // uniform over available columns
	Naive                     // win, else block, else random
	Simple                    // win, else block, else best immediate heuristic
	Heuristic                 // best immediate heuristic
	Minimax                   // 3-ply exhaustive-sum lookahead
	Human                     // column read from a Prompter
)

var ErrUnknownStrategy = errors.New("unknown strategy")

var strategyNames = [...]string{
	Random:    "random",
	Naive:     "naive",
	Simple:    "simple",
	Heuristic: "heuristic",
	Minimax:   "minimax",
	Human:     "human",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return "unknown"
	}
	return strategyNames[s]
}

// ParseStrategy maps a strategy tag such as "minimax" to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range strategyNames {
		if n == name {
			return Strategy(s), nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

// Automated returns every strategy that needs no external input, weakest first.
func Automated() []Strategy {
	return []Strategy{Random, Naive, Simple, Heuristic, Minimax}
}
