package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
	"math"

	"golang.org/x/exp/rand"
)

// IsImmediateWin reports whether playing column wins the game for symbol.
// The probe leaves the grid unchanged.
func IsImmediateWin(g *game.Grid, symbol, opponent game.Symbol, column int) (bool, error) {
	return isImmediateWin(g, symbol, opponent, column, metrics.NewDummyCollector())
}

func isImmediateWin(g *game.Grid, symbol, opponent game.Symbol, column int, c metrics.Collector) (bool, error) {
	if err := g.Apply(column, symbol); err != nil {
		return false, err
	}
	winner, ok := g.Winner(symbol, opponent)
	c.AddEvaluation()
	if err := g.Undo(column); err != nil {
		return false, err
	}
	return ok && winner == symbol, nil
}

// firstWinningColumn returns the lowest of columns that wins for symbol, or -1.
func firstWinningColumn(g *game.Grid, columns []int, symbol, opponent game.Symbol, c metrics.Collector) (int, error) {
	for _, col := range columns {
		win, err := isImmediateWin(g, symbol, opponent, col, c)
		if err != nil {
			return -1, err
		}
		if win {
			return col, nil
		}
	}
	return -1, nil
}

// winOrBlock returns a winning column for symbol, else one that blocks an
// immediate win of opponent, else -1.
func winOrBlock(g *game.Grid, columns []int, symbol, opponent game.Symbol, c metrics.Collector) (int, error) {
	col, err := firstWinningColumn(g, columns, symbol, opponent, c)
	if err != nil || col >= 0 {
		return col, err
	}
	return firstWinningColumn(g, columns, opponent, symbol, c)
}

// RandomMove picks an available column uniformly.
func RandomMove(g *game.Grid, rng *rand.Rand) (int, error) {
	return randomMove(g, rng)
}

func randomMove(g *game.Grid, rng *rand.Rand) (int, error) {
	columns := g.AvailableColumns()
	if len(columns) == 0 {
		return -1, noLegalMove(g)
	}
	return columns[rng.Intn(len(columns))], nil
}

// NaiveMove wins if it can, blocks if it must, and plays randomly otherwise.
func NaiveMove(g *game.Grid, symbol, opponent game.Symbol, rng *rand.Rand) (int, error) {
	return naiveMove(g, symbol, opponent, rng, metrics.NewDummyCollector())
}

func naiveMove(g *game.Grid, symbol, opponent game.Symbol, rng *rand.Rand, c metrics.Collector) (int, error) {
	columns := g.AvailableColumns()
	if len(columns) == 0 {
		return -1, noLegalMove(g)
	}
	col, err := winOrBlock(g, columns, symbol, opponent, c)
	if err != nil || col >= 0 {
		return col, err
	}
	return randomMove(g, rng)
}

// GreedyMove wins if it can, blocks if it must, and otherwise plays the
// column with the best immediate heuristic.
func GreedyMove(g *game.Grid, symbol, opponent game.Symbol) (int, error) {
	return greedyMove(g, symbol, opponent, metrics.NewDummyCollector())
}

func greedyMove(g *game.Grid, symbol, opponent game.Symbol, c metrics.Collector) (int, error) {
	columns := g.AvailableColumns()
	if len(columns) == 0 {
		return -1, noLegalMove(g)
	}
	col, err := winOrBlock(g, columns, symbol, opponent, c)
	if err != nil || col >= 0 {
		return col, err
	}
	return bestImmediateHeuristic(g, symbol, opponent, c)
}

// BestImmediateHeuristic plays the column whose resulting grid has the highest
// Heuristic for symbol. Ties go to the lowest column.
func BestImmediateHeuristic(g *game.Grid, symbol, opponent game.Symbol) (int, error) {
	return bestImmediateHeuristic(g, symbol, opponent, metrics.NewDummyCollector())
}

func bestImmediateHeuristic(g *game.Grid, symbol, opponent game.Symbol, c metrics.Collector) (int, error) {
	columns := g.AvailableColumns()
	if len(columns) == 0 {
		return -1, noLegalMove(g)
	}

	best := columns[0]
	bestScore := math.MinInt // below any reachable heuristic
	for _, col := range columns {
		if err := g.Apply(col, symbol); err != nil {
			return -1, err
		}
		score := g.Heuristic(symbol, opponent)
		c.AddEvaluation()
		if err := g.Undo(col); err != nil {
			return -1, err
		}

		if score > bestScore {
			best = col
			bestScore = score
		}
	}
	return best, nil
}
