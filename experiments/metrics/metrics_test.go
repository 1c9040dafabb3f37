package metrics

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start("heuristic")
	for i := 0; i < 7; i++ {
		c.AddEvaluation()
	}
	metric := c.Complete(3)
	require.Equal(t, "heuristic", metric.Strategy)
	require.Equal(t, 3, metric.Column)
	require.Equal(t, 7, metric.Evaluations)

	c.Start("minimax")
	require.Zero(t, c.Complete(0).Evaluations, "Start should reset the count")

	d := NewDummyCollector()
	d.Start("random")
	d.AddEvaluation()
	require.Equal(t, SearchMetric{}, d.Complete(2))
}

func TestMatchSummaryString(t *testing.T) {
	summary := MatchSummary{
		NumGames: 100,
		Played:   100,
		Ties:     4,
		Players: [2]PlayerSummary{
			{Name: "Random Player", Symbol: "a", Wins: 10, AverageMovesToWin: 21.5},
			{Name: "Naive Player", Symbol: "c", Wins: 86},
		},
	}
	want := "------Match Results------\n" +
		"Number of Games: 100\n" +
		"Number of Ties: 4\n" +
		"\n" +
		"Player: Random Player\nSymbol: a\nWins: 10\n" +
		"Average Number of Moves to Win: 21.50\n" +
		"\n" +
		"Player: Naive Player\nSymbol: c\nWins: 86\n" +
		"Average Number of Moves to Win: 0.00\n"
	require.Equal(t, want, summary.String())

	summary.Played = 12
	summary.Error = "column is full"
	require.Contains(t, summary.String(), "Aborted after 12 games: column is full\n")
}

func TestWriter(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var out bytes.Buffer
	w := NewWriter(&out)

	err := w.WriteGameRecords([]GameRecord{{
		Match:   "m1",
		Game:    1,
		Player1: "X",
		Player2: "O",
		GameMetric: GameMetric{
			StartingPlayer: "X",
			Winner:         "O",
			StartTime:      start,
			EndTime:        start.Add(time.Second),
			Duration:       time.Second,
			TotalMoves:     12,
		},
	}})
	require.NoError(t, err)

	records, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"match", "game", "player1", "player2", "starting_player", "winner", "start_time", "end_time", "duration", "moves"},
		{"m1", "1", "X", "O", "X", "O", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12"},
	}, records)

	out.Reset()
	err = w.WriteMoveRecords([]MoveRecord{{
		Match: "m1",
		Game:  1,
		MoveMetric: MoveMetric{
			Step:         3,
			Player:       "X",
			SearchMetric: SearchMetric{Strategy: "simple", Column: 4, Duration: time.Millisecond, Evaluations: 21},
		},
	}})
	require.NoError(t, err)
	records, err = csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	require.Equal(t, []string{"m1", "1", "3", "X", "simple", "4", "1ms", "21"}, records[1])
}
