package searcher

import (
	"connect4/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// bruteForceTotals sums SimpleHeuristic over every (symbol, opponent, symbol)
// continuation of each first move, working on clones only.
func bruteForceTotals(t *testing.T, g *game.Grid, symbol, opponent game.Symbol) map[int]int {
	t.Helper()
	totals := map[int]int{}
	for _, c1 := range g.AvailableColumns() {
		g1 := g.Clone()
		require.NoError(t, g1.Apply(c1, symbol))
		for _, c2 := range g1.AvailableColumns() {
			g2 := g1.Clone()
			require.NoError(t, g2.Apply(c2, opponent))
			for _, c3 := range g2.AvailableColumns() {
				g3 := g2.Clone()
				require.NoError(t, g3.Apply(c3, symbol))
				totals[c1] += g3.SimpleHeuristic(symbol, opponent)
			}
		}
	}
	return totals
}

func TestShallowTreeMove(t *testing.T) {
	t.Run("plays an immediate win before searching", func(t *testing.T) {
		g := newGrid(t)
		drop(t, g, X, 6, 6, 6)
		drop(t, g, O, 0, 1, 2)

		col, err := ShallowTreeMove(g, X, O)
		require.NoError(t, err)
		require.Equal(t, 6, col)
	})

	t.Run("does not block, only wins are checked", func(t *testing.T) {
		g := newGrid(t)
		drop(t, g, X, 6, 5)
		drop(t, g, O, 0, 1, 2)
		before := g.String()

		col, err := ShallowTreeMove(g, X, O)
		require.NoError(t, err)
		require.Equal(t, before, g.String(), "Search should restore the grid")

		totals := bruteForceTotals(t, g, X, O)
		best := g.AvailableColumns()[0]
		for _, c := range g.AvailableColumns() {
			if totals[c] > totals[best] {
				best = c
			}
		}
		require.Equal(t, best, col)
	})

	t.Run("plays the first move with the largest leaf sum", func(t *testing.T) {
		g := newGrid(t)
		drop(t, g, X, 3, 3, 2)
		drop(t, g, O, 2, 4, 4)
		before := g.String()

		col, err := ShallowTreeMove(g, X, O)
		require.NoError(t, err)
		require.Equal(t, before, g.String())

		totals := bruteForceTotals(t, g, X, O)
		for c, total := range totals {
			require.LessOrEqual(t, total, totals[col], "column %d has a larger sum than %d", c, col)
			if total == totals[col] {
				require.LessOrEqual(t, col, c, "ties should go to the lowest column")
			}
		}
	})

	t.Run("handles columns that fill up inside the tree", func(t *testing.T) {
		g := newGrid(t)
		// Column 3 is one short of full
		for i := 0; i < 5; i++ {
			drop(t, g, game.Symbol("XO"[i%2]), 3)
		}
		before := g.String()

		col, err := ShallowTreeMove(g, O, X)
		require.NoError(t, err)
		require.Contains(t, g.AvailableColumns(), col)
		require.Equal(t, before, g.String())
	})
}
