package engine

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"connect4/player"
	"connect4/searcher"
	"connect4/utils"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var ErrSearcherCount = errors.New("need one searcher per player")

// Game plays two players against each other on a shared grid, player one
// moving first. Each player is driven by its own Searcher.
type Game struct {
	grid      *game.Grid
	players   []*player.Player
	searchers []*searcher.Searcher
}

var _ Engine = (*Game)(nil)

func NewGame(grid *game.Grid, players []*player.Player, searchers []*searcher.Searcher) (*Game, error) {
	if len(players) != 2 || len(searchers) != len(players) {
		return nil, errors.Wrapf(ErrSearcherCount, "got %d players and %d searchers", len(players), len(searchers))
	}
	if err := player.ValidatePair(players[0], players[1]); err != nil {
		return nil, err
	}
	return &Game{
		grid:      grid,
		players:   players,
		searchers: searchers,
	}, nil
}

func (e *Game) Grid() *game.Grid        { return e.grid }
func (e *Game) Player1() *player.Player { return e.players[0] }
func (e *Game) Player2() *player.Player { return e.players[1] }

// Run alternates moves until a player wins or the grid fills up. The grid is
// left as the game ended so callers can inspect it.
func (e *Game) Run() (*player.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	symbols := []game.Symbol{e.players[0].Symbol, e.players[1].Symbol}
	gameMetric := metrics.GameMetric{
		StartingPlayer: symbols[0].String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("%s is starting against %s", e.players[0].Name, e.players[1].Name)

	var winner *player.Player
	for step := 0; winner == nil && !e.grid.IsFull(); step++ {
		current := step % 2
		p := e.players[current]

		column, searchMetric, err := e.searchers[current].FindMove(e.grid, p.Symbol, symbols[1-current])
		if err != nil {
			return nil, e.finish(gameMetric, nil), moveMetrics, errors.Wrapf(err, "%s failed to find move %d", p.Name, step+1)
		}
		if err := e.grid.Apply(column, p.Symbol); err != nil {
			return nil, e.finish(gameMetric, nil), moveMetrics, errors.Wrapf(err, "%s played column %d", p.Name, column)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step + 1,
			Player:       p.Symbol.String(),
			SearchMetric: searchMetric,
		})

		if symbol, ok := e.grid.Winner(symbols[0], symbols[1]); ok {
			winner = e.players[utils.FindIndex(symbols, symbol)]
		}
	}

	gameMetric = e.finish(gameMetric, winner)
	if winner != nil {
		log.Debug().Msgf("%s won in %d moves", winner.Name, gameMetric.TotalMoves)
	} else {
		log.Debug().Msgf("tie game after %d moves", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics, nil
}

func (e *Game) finish(gameMetric metrics.GameMetric, winner *player.Player) metrics.GameMetric {
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.grid.NumMoves()
	if winner != nil {
		gameMetric.Winner = winner.Symbol.String()
	}
	return gameMetric
}
