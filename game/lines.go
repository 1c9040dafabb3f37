package game

// scanLines lists every line the evaluator scans, as cell indexes in a
// row-major grid: all rows (left to right), all columns (top to bottom), the
// down-right diagonals anchored on the top row and left edge, then the
// up-right diagonals anchored on the bottom row and left edge. Diagonals
// shorter than WinLength are skipped.
func scanLines(rows, columns int) [][]int {
	var lines [][]int

	for r := 0; r < rows; r++ {
		lines = append(lines, walk(rows, columns, r, 0, 0, 1))
	}
	for c := 0; c < columns; c++ {
		lines = append(lines, walk(rows, columns, 0, c, 1, 0))
	}

	// Down-right
	for c := 0; c < columns; c++ {
		lines = appendDiagonal(lines, walk(rows, columns, 0, c, 1, 1))
	}
	for r := 1; r < rows; r++ {
		lines = appendDiagonal(lines, walk(rows, columns, r, 0, 1, 1))
	}

	// Up-right
	for c := 0; c < columns; c++ {
		lines = appendDiagonal(lines, walk(rows, columns, rows-1, c, -1, 1))
	}
	for r := rows - 2; r >= 0; r-- {
		lines = appendDiagonal(lines, walk(rows, columns, r, 0, -1, 1))
	}

	return lines
}

func appendDiagonal(lines [][]int, diagonal []int) [][]int {
	if len(diagonal) < WinLength {
		return lines
	}
	return append(lines, diagonal)
}

// walk collects indexes from (row, column) stepping by (dr, dc) until it leaves the grid.
func walk(rows, columns, row, column, dr, dc int) []int {
	var line []int
	for row >= 0 && row < rows && column >= 0 && column < columns {
		line = append(line, row*columns+column)
		row += dr
		column += dc
	}
	return line
}
