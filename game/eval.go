package game

import "github.com/pkg/errors"

// A pattern is a fixed window over a line: true cells hold the counted
// symbol, false cells must be empty.
type pattern []bool

// straightPatterns lists, per straight length, the windows counted as an open
// straight of that length. Length 4 needs no padding since it is already a win.
var straightPatterns = [WinLength + 1][]pattern{
	1: {
		{false, true, false},
	},
	2: {
		{false, true, true, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	},
	3: {
		{false, true, true, true, false},
		{false, true, true, true},
		{true, false, true, true},
		{true, true, false, true},
		{true, true, true, false},
	},
	4: {
		{true, true, true, true},
	},
}

// Weights per straight length for Heuristic and SimpleHeuristic.
var (
	heuristicWeights       = [WinLength + 1]int{0, 1, 3, 5, 10}
	simpleHeuristicWeights = [WinLength + 1]int{0, 0, 3, 5, 0}
)

// Winner returns a or b if either has four in a row, scanning rows, columns
// and both diagonal directions in that order.
func (g *Grid) Winner(a, b Symbol) (Symbol, bool) {
	for _, line := range g.lines {
		run := 0
		last := Empty
		for _, idx := range line {
			cell := g.cells[idx]
			if cell != Empty && cell == last {
				run++
			} else {
				run = 1
				last = cell
			}
			if last != Empty && run >= WinLength && (last == a || last == b) {
				return last, true
			}
		}
	}
	return Empty, false
}

// CountOpenStraights counts the occurrences of the open straight patterns of
// the given length for symbol over every scanned line. Overlapping
// occurrences are all counted.
func (g *Grid) CountOpenStraights(symbol Symbol, length int) (int, error) {
	if length < 1 || length > WinLength {
		return 0, errors.Wrapf(ErrInvalidLength, "length %d not in [1, %d]", length, WinLength)
	}
	if !symbol.Valid() {
		return 0, errors.Wrapf(ErrInvalidSymbol, "count straights of %q", symbol)
	}
	return g.countStraights(symbol, length), nil
}

// Heuristic scores the grid from symbol's point of view, weighting open
// straights of length 1 to 4 by 1, 3, 5 and 10.
func (g *Grid) Heuristic(symbol, opponent Symbol) int {
	return g.weightedScore(symbol, heuristicWeights) - g.weightedScore(opponent, heuristicWeights)
}

// SimpleHeuristic is a cheaper Heuristic that only counts straights of
// length 2 and 3.
func (g *Grid) SimpleHeuristic(symbol, opponent Symbol) int {
	return g.weightedScore(symbol, simpleHeuristicWeights) - g.weightedScore(opponent, simpleHeuristicWeights)
}

func (g *Grid) weightedScore(symbol Symbol, weights [WinLength + 1]int) int {
	score := 0
	for length := 1; length <= WinLength; length++ {
		if weights[length] == 0 {
			continue
		}
		score += weights[length] * g.countStraights(symbol, length)
	}
	return score
}

func (g *Grid) countStraights(symbol Symbol, length int) int {
	count := 0
	for _, line := range g.lines {
		for _, p := range straightPatterns[length] {
			count += g.countPattern(line, p, symbol)
		}
	}
	return count
}

func (g *Grid) countPattern(line []int, p pattern, symbol Symbol) int {
	count := 0
	for start := 0; start+len(p) <= len(line); start++ {
		matched := true
		for k, want := range p {
			cell := g.cells[line[start+k]]
			if (want && cell != symbol) || (!want && cell != Empty) {
				matched = false
				break
			}
		}
		if matched {
			count++
		}
	}
	return count
}
