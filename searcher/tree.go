package searcher

import (
	"connect4/experiments/metrics"
	"connect4/game"
)

// ShallowTreeMove is the "minimax" strategy. Despite the name it is not a
// minimax search: it plays an immediate win when one exists, otherwise it sums
// SimpleHeuristic over every leaf of the 3-ply tree (symbol, opponent, symbol)
// below each first move and plays the first move with the largest sum. The
// opponent's replies are summed, not minimized.
func ShallowTreeMove(g *game.Grid, symbol, opponent game.Symbol) (int, error) {
	return shallowTreeMove(g, symbol, opponent, metrics.NewDummyCollector())
}

func shallowTreeMove(g *game.Grid, symbol, opponent game.Symbol, c metrics.Collector) (int, error) {
	first := g.AvailableColumns()
	if len(first) == 0 {
		return -1, noLegalMove(g)
	}

	win, err := firstWinningColumn(g, first, symbol, opponent, c)
	if err != nil || win >= 0 {
		return win, err
	}

	// Plies after the first move
	movers := []game.Symbol{opponent, symbol}
	totals := make([]int, len(first))
	for i, col := range first {
		if err := g.Apply(col, symbol); err != nil {
			return -1, err
		}
		total, err := sumLeaves(g, movers, symbol, opponent, c)
		if undoErr := g.Undo(col); undoErr != nil {
			return -1, undoErr
		}
		if err != nil {
			return -1, err
		}
		totals[i] = total
	}

	best := 0
	for i := range totals {
		if totals[i] > totals[best] {
			best = i
		}
	}
	return first[best], nil
}

// sumLeaves plays every available column for movers[0], recurses for the
// remaining movers and adds up SimpleHeuristic at the leaves. The grid is
// restored before returning.
func sumLeaves(g *game.Grid, movers []game.Symbol, symbol, opponent game.Symbol, c metrics.Collector) (int, error) {
	if len(movers) == 0 {
		c.AddEvaluation()
		return g.SimpleHeuristic(symbol, opponent), nil
	}

	total := 0
	for _, col := range g.AvailableColumns() {
		if err := g.Apply(col, movers[0]); err != nil {
			return 0, err
		}
		sum, err := sumLeaves(g, movers[1:], symbol, opponent, c)
		if undoErr := g.Undo(col); undoErr != nil {
			return 0, undoErr
		}
		if err != nil {
			return 0, err
		}
		total += sum
	}
	return total, nil
}
