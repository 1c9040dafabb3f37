package player

import (
	"connect4/game"
	"connect4/searcher"
	"fmt"

	"github.com/pkg/errors"
)

// Player represents a game player.
type Player struct {
	Name     string
	Symbol   game.Symbol
	Strategy searcher.Strategy
	wins     int
}

// New creates a new Player. The symbol must be exactly one character and
// neither the empty marker nor a reserved one.
func New(name, symbol string, strategy searcher.Strategy) (*Player, error) {
	sym, err := game.ParseSymbol(symbol)
	if err != nil {
		return nil, errors.Wrapf(err, "player %q", name)
	}
	return &Player{
		Name:     name,
		Symbol:   sym,
		Strategy: strategy,
	}, nil
}

// ValidatePair checks that two players can share a grid.
func ValidatePair(p1, p2 *Player) error {
	if p1.Symbol == p2.Symbol {
		return errors.Wrapf(game.ErrDuplicateSymbol, "%s and %s both play %s", p1.Name, p2.Name, p1.Symbol)
	}
	return nil
}

func (p *Player) GiveWin() {
	p.wins++
}

func (p *Player) Wins() int {
	return p.wins
}

func (p *Player) ResetWins() {
	p.wins = 0
}

func (p *Player) String() string {
	return fmt.Sprintf("Player: %s\nSymbol: %s\nWins: %d\n", p.Name, p.Symbol, p.wins)
}
