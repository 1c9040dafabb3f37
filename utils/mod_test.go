package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
}

func TestMean(t *testing.T) {
	require.Zero(t, Mean([]int{}))
	require.InDelta(t, 9.5, Mean([]int{7, 12}), 1e-9)
	require.InDelta(t, 0.25, Mean([]float64{0.5, 0}), 1e-9)
}
