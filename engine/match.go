package engine

import (
	"connect4/experiments/metrics"
	"connect4/player"
	"connect4/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Match plays a number of games between the two players of a Game, emptying
// the grid after each one. Any error ends the match, keeping the tallies of
// the games completed before it.
type Match struct {
	ID       uuid.UUID
	game     *Game
	numGames int
	played   int
	ties     int
	moves    [2][]int // moves of every game won, per player
	err      error

	gameRecords []metrics.GameRecord
	moveRecords []metrics.MoveRecord
}

func NewMatch(game *Game, numGames int) *Match {
	return &Match{
		ID:       uuid.New(),
		game:     game,
		numGames: numGames,
	}
}

func (m *Match) Play() error {
	p1, p2 := m.game.Player1(), m.game.Player2()
	log.Info().Str("match", m.ID.String()).Msgf("starting %d games of %s vs. %s", m.numGames, p1.Name, p2.Name)

	for i := 0; i < m.numGames; i++ {
		winner, gameMetric, moveMetrics, err := m.game.Run()
		m.record(gameMetric, moveMetrics)
		m.game.Grid().Reset()
		if err != nil {
			m.err = err
			log.Error().Err(err).Str("match", m.ID.String()).Msgf("error playing %s vs. %s in game %d", p1.Name, p2.Name, i+1)
			return err
		}

		m.played++
		switch winner {
		case nil:
			m.ties++
		case p1:
			m.moves[0] = append(m.moves[0], gameMetric.TotalMoves)
		case p2:
			m.moves[1] = append(m.moves[1], gameMetric.TotalMoves)
		}
		if winner != nil {
			winner.GiveWin()
		}
	}

	log.Info().Str("match", m.ID.String()).Msgf("completed %s vs. %s: %d-%d with %d ties", p1.Name, p2.Name, p1.Wins(), p2.Wins(), m.ties)
	return nil
}

func (m *Match) record(gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric) {
	id := m.ID.String()
	number := len(m.gameRecords) + 1
	m.gameRecords = append(m.gameRecords, metrics.GameRecord{
		Match:      id,
		Game:       number,
		Player1:    m.game.Player1().Symbol.String(),
		Player2:    m.game.Player2().Symbol.String(),
		GameMetric: gameMetric,
	})
	for _, mm := range moveMetrics {
		m.moveRecords = append(m.moveRecords, metrics.MoveRecord{
			Match:      id,
			Game:       number,
			MoveMetric: mm,
		})
	}
}

func (m *Match) Game() *Game   { return m.game }
func (m *Match) NumGames() int { return m.numGames }
func (m *Match) Played() int   { return m.played }
func (m *Match) Ties() int     { return m.ties }
func (m *Match) Err() error    { return m.err }

// MovesToWin returns the length of every game won by player 0 or 1.
func (m *Match) MovesToWin(i int) []int {
	return append([]int(nil), m.moves[i]...)
}

func (m *Match) AverageMovesToWin(i int) float64 {
	return utils.Mean(m.moves[i])
}

// GameRecords includes the game an error interrupted, if any.
func (m *Match) GameRecords() []metrics.GameRecord { return m.gameRecords }
func (m *Match) MoveRecords() []metrics.MoveRecord { return m.moveRecords }

func (m *Match) Summary() metrics.MatchSummary {
	summary := metrics.MatchSummary{
		ID:       m.ID.String(),
		NumGames: m.numGames,
		Played:   m.played,
		Ties:     m.ties,
	}
	for i, p := range []*player.Player{m.game.Player1(), m.game.Player2()} {
		summary.Players[i] = metrics.PlayerSummary{
			Name:              p.Name,
			Symbol:            p.Symbol.String(),
			Strategy:          p.Strategy.String(),
			Wins:              p.Wins(),
			AverageMovesToWin: m.AverageMovesToWin(i),
		}
	}
	if m.err != nil {
		summary.Error = m.err.Error()
	}
	return summary
}

func (m *Match) String() string {
	return m.Summary().String()
}
