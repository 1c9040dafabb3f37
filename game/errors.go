package game

// Error is a sentinel failure raised by the grid, the evaluator or the searchers.
// Callers match it with errors.Is, the returned error usually wraps it with context.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidDimensions Error = "invalid grid dimensions"
	ErrInvalidColumn     Error = "invalid column"
	ErrColumnFull        Error = "column is full"
	ErrEmptyColumn       Error = "column is empty"
	ErrOutOfBounds       Error = "cell out of bounds"
	ErrInvalidLength     Error = "invalid straight length"
	ErrNoLegalMove       Error = "no legal move"
	ErrInvalidSymbol     Error = "invalid symbol"
	ErrDuplicateSymbol   Error = "duplicate symbol"
)
