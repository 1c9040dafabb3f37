package player

import (
	"connect4/game"
	"connect4/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("valid symbol", func(t *testing.T) {
		p, err := New("Naive Player", "c", searcher.Naive)
		require.NoError(t, err)
		require.Equal(t, game.Symbol('c'), p.Symbol)
		require.Equal(t, searcher.Naive, p.Strategy)
		require.Zero(t, p.Wins())
	})

	t.Run("invalid symbols", func(t *testing.T) {
		for _, symbol := range []string{"", "e", "_", "ab"} {
			_, err := New("Bad", symbol, searcher.Random)
			require.ErrorIs(t, err, game.ErrInvalidSymbol, "symbol %q", symbol)
		}
	})
}

func TestValidatePair(t *testing.T) {
	a, err := New("A", "x", searcher.Random)
	require.NoError(t, err)
	b, err := New("B", "x", searcher.Heuristic)
	require.NoError(t, err)
	c, err := New("C", "o", searcher.Heuristic)
	require.NoError(t, err)

	require.ErrorIs(t, ValidatePair(a, b), game.ErrDuplicateSymbol)
	require.NoError(t, ValidatePair(a, c))
}

func TestWins(t *testing.T) {
	p, err := New("Heuristic Player", "h", searcher.Heuristic)
	require.NoError(t, err)

	p.GiveWin()
	p.GiveWin()
	require.Equal(t, 2, p.Wins())
	require.Equal(t, "Player: Heuristic Player\nSymbol: h\nWins: 2\n", p.String())

	p.ResetWins()
	require.Zero(t, p.Wins())
}
