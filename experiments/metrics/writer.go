package metrics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type GameRecord struct {
	Match   string // MatchSummary.ID
	Game    int
	Player1 string // Player symbol
	Player2 string // Player symbol
	GameMetric
}

type MoveRecord struct {
	Match string // MatchSummary.ID
	Game  int    // GameRecord.Game
	MoveMetric
}

type PlayerSummary struct {
	Name              string
	Symbol            string
	Strategy          string
	Wins              int
	AverageMovesToWin float64 // 0 when the player never won
}

func (p PlayerSummary) String() string {
	return fmt.Sprintf("Player: %s\nSymbol: %s\nWins: %d\n", p.Name, p.Symbol, p.Wins)
}

// MatchSummary is the outcome of a match. Played is smaller than NumGames
// when the match was aborted, Error then holds the reason.
type MatchSummary struct {
	ID       string
	NumGames int
	Played   int
	Ties     int
	Players  [2]PlayerSummary
	Error    string
}

func (m MatchSummary) String() string {
	var b strings.Builder
	b.WriteString("------Match Results------\n")
	fmt.Fprintf(&b, "Number of Games: %d\n", m.NumGames)
	fmt.Fprintf(&b, "Number of Ties: %d\n", m.Ties)
	if m.Error != "" {
		fmt.Fprintf(&b, "Aborted after %d games: %s\n", m.Played, m.Error)
	}
	for _, p := range m.Players {
		b.WriteString("\n")
		b.WriteString(p.String())
		fmt.Fprintf(&b, "Average Number of Moves to Win: %.2f\n", p.AverageMovesToWin)
	}
	return b.String()
}

// Writer renders experiment results to an output stream.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// WriteReport prints every summary as a plain text block.
func (w *Writer) WriteReport(summaries []MatchSummary) error {
	for _, summary := range summaries {
		if _, err := fmt.Fprintln(w.out, summary.String()); err != nil {
			return errors.Wrap(err, "failed to write match report")
		}
	}
	return nil
}

func (w *Writer) WriteMatchSummaries(summaries []MatchSummary) error {
	header := []string{
		"id", "games", "played", "ties",
		"player1", "strategy1", "wins1", "avg_moves1",
		"player2", "strategy2", "wins2", "avg_moves2", "error",
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.ID,
			strconv.Itoa(s.NumGames),
			strconv.Itoa(s.Played),
			strconv.Itoa(s.Ties),
			s.Players[0].Symbol,
			s.Players[0].Strategy,
			strconv.Itoa(s.Players[0].Wins),
			strconv.FormatFloat(s.Players[0].AverageMovesToWin, 'f', 2, 64),
			s.Players[1].Symbol,
			s.Players[1].Strategy,
			strconv.Itoa(s.Players[1].Wins),
			strconv.FormatFloat(s.Players[1].AverageMovesToWin, 'f', 2, 64),
			s.Error,
		})
	}
	return w.writeCSV("match summaries", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"match", "game", "player1", "player2", "starting_player", "winner", "start_time", "end_time", "duration", "moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Match,
			strconv.Itoa(record.Game),
			record.Player1,
			record.Player2,
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"match", "game", "step", "player", "strategy", "column", "duration", "evaluations"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Match,
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Strategy,
			strconv.Itoa(record.Column),
			record.Duration.String(),
			strconv.Itoa(record.Evaluations),
		})
	}
	return w.writeCSV("move records", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	writer := csv.NewWriter(w.out)

	// Write header
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}

	// Write each row
	if err := writer.WriteAll(rows); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}
