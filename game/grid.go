package game

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	MinRows    = 6
	MinColumns = 7
	WinLength  = 4
)

// Grid is a mutable Connect-4 board with bottom gravity.
//
// Row 0 is the top of the board. heights[c] always equals the number of
// non-empty cells of column c, and those cells occupy the bottom heights[c]
// rows. Searches borrow a Grid and must undo every move they apply, in reverse
// order, before returning. A Grid is not safe for concurrent use; use Clone
// to give each concurrent search its own copy.
type Grid struct {
	rows    int
	columns int
	cells   []Symbol // row-major
	heights []int
	lines   [][]int // cell indexes of every scanned line, shared between clones
}

// NewGrid creates an empty grid of at least MinRows x MinColumns.
func NewGrid(rows, columns int) (*Grid, error) {
	if rows < MinRows || columns < MinColumns {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d is smaller than %dx%d", rows, columns, MinRows, MinColumns)
	}
	return &Grid{
		rows:    rows,
		columns: columns,
		cells:   make([]Symbol, rows*columns),
		heights: make([]int, columns),
		lines:   scanLines(rows, columns),
	}, nil
}

func (g *Grid) Rows() int    { return g.rows }
func (g *Grid) Columns() int { return g.columns }

// Apply drops symbol into column; it lands on the lowest empty cell.
func (g *Grid) Apply(column int, symbol Symbol) error {
	if column < 0 || column >= g.columns {
		return errors.Wrapf(ErrInvalidColumn, "apply to column %d of %d", column, g.columns)
	}
	if !symbol.Valid() {
		return errors.Wrapf(ErrInvalidSymbol, "apply %q", symbol)
	}
	if g.heights[column] == g.rows {
		return errors.Wrapf(ErrColumnFull, "apply to column %d", column)
	}
	row := g.rows - 1 - g.heights[column]
	g.cells[g.index(row, column)] = symbol
	g.heights[column]++
	return nil
}

// Undo removes the top symbol of column, reverting the latest Apply on it.
func (g *Grid) Undo(column int) error {
	if column < 0 || column >= g.columns {
		return errors.Wrapf(ErrInvalidColumn, "undo column %d of %d", column, g.columns)
	}
	if g.heights[column] == 0 {
		return errors.Wrapf(ErrEmptyColumn, "undo column %d", column)
	}
	row := g.rows - g.heights[column]
	g.cells[g.index(row, column)] = Empty
	g.heights[column]--
	return nil
}

// AvailableColumns returns the columns that can still be played, in ascending order.
// An empty result means the grid is full.
func (g *Grid) AvailableColumns() []int {
	available := make([]int, 0, g.columns)
	for c, h := range g.heights {
		if h < g.rows {
			available = append(available, c)
		}
	}
	return available
}

func (g *Grid) IsFull() bool {
	for _, h := range g.heights {
		if h < g.rows {
			return false
		}
	}
	return true
}

// Height returns the number of symbols in column.
func (g *Grid) Height(column int) (int, error) {
	if column < 0 || column >= g.columns {
		return 0, errors.Wrapf(ErrInvalidColumn, "height of column %d of %d", column, g.columns)
	}
	return g.heights[column], nil
}

// NumMoves returns the number of symbols on the grid.
func (g *Grid) NumMoves() int {
	moves := 0
	for _, h := range g.heights {
		moves += h
	}
	return moves
}

// CellAt returns the symbol at (row, column).
func (g *Grid) CellAt(row, column int) (Symbol, error) {
	if row < 0 || row >= g.rows || column < 0 || column >= g.columns {
		return Empty, errors.Wrapf(ErrOutOfBounds, "cell (%d, %d) of %dx%d", row, column, g.rows, g.columns)
	}
	return g.cells[g.index(row, column)], nil
}

// Row returns a copy of row i from left to right.
func (g *Grid) Row(i int) ([]Symbol, error) {
	if i < 0 || i >= g.rows {
		return nil, errors.Wrapf(ErrOutOfBounds, "row %d of %d", i, g.rows)
	}
	row := make([]Symbol, g.columns)
	copy(row, g.cells[i*g.columns:(i+1)*g.columns])
	return row, nil
}

// Column returns a copy of column j from top to bottom.
func (g *Grid) Column(j int) ([]Symbol, error) {
	if j < 0 || j >= g.columns {
		return nil, errors.Wrapf(ErrOutOfBounds, "column %d of %d", j, g.columns)
	}
	column := make([]Symbol, g.rows)
	for i := range column {
		column[i] = g.cells[g.index(i, j)]
	}
	return column, nil
}

// Reset empties the grid without changing its dimensions.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	for i := range g.heights {
		g.heights[i] = 0
	}
}

func (g *Grid) Clone() *Grid {
	cells := make([]Symbol, len(g.cells))
	copy(cells, g.cells)
	heights := make([]int, len(g.heights))
	copy(heights, g.heights)
	return &Grid{
		rows:    g.rows,
		columns: g.columns,
		cells:   cells,
		heights: heights,
		lines:   g.lines,
	}
}

func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.columns; j++ {
			sb.WriteString(g.cells[g.index(i, j)].String())
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("Heights: [")
	for c, h := range g.heights {
		if c > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(h))
	}
	sb.WriteString("]\n")
	return sb.String()
}

func (g *Grid) index(row, column int) int {
	return row*g.columns + column
}
