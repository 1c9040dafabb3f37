package searcher

import (
	"bufio"
	"connect4/game"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Prompter supplies a human's column choice. PromptForColumn blocks until a
// whole number in [min, max] is entered.
type Prompter interface {
	PromptForColumn(min, max int) (int, error)
}

// BoardViewer is implemented by prompters that show the grid before asking.
type BoardViewer interface {
	ShowBoard(g *game.Grid)
}

// HumanMove asks prompter for a column in range. Whether the column is full
// is left to the caller, as for any other move.
func HumanMove(g *game.Grid, prompter Prompter) (int, error) {
	return humanMove(g, prompter)
}

func humanMove(g *game.Grid, prompter Prompter) (int, error) {
	if prompter == nil {
		return -1, ErrNoPrompter
	}
	if g.IsFull() {
		return -1, noLegalMove(g)
	}
	if viewer, ok := prompter.(BoardViewer); ok {
		viewer.ShowBoard(g)
	}
	return prompter.PromptForColumn(0, g.Columns()-1)
}

// ConsolePrompter reads columns as whitespace separated words.
type ConsolePrompter struct {
	name    string
	scanner *bufio.Scanner
	out     io.Writer
}

func NewConsolePrompter(name string, in io.Reader, out io.Writer) *ConsolePrompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &ConsolePrompter{name: name, scanner: scanner, out: out}
}

func (p *ConsolePrompter) ShowBoard(g *game.Grid) {
	fmt.Fprint(p.out, g.String())
}

func (p *ConsolePrompter) PromptForColumn(min, max int) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s enter a column number [%d,%d]: ", p.name, min, max)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return -1, errors.Wrap(err, "read column")
			}
			return -1, errors.Wrap(io.ErrUnexpectedEOF, "read column")
		}
		column, err := strconv.Atoi(p.scanner.Text())
		if err != nil || column < min || column > max {
			continue
		}
		return column, nil
	}
}
