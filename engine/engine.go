package engine

import (
	"connect4/experiments/metrics"
	"connect4/player"
)

type Engine interface {
	// Run plays one game till a player connects four or the grid is full.
	// The winner is nil on a tie.
	Run() (winner *player.Player, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
