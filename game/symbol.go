package game

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Symbol identifies the owner of a cell. The zero value is the empty cell.
type Symbol rune

const Empty Symbol = 0

// Characters a player may not use because they read as an empty cell.
const reservedSymbols = "e_"

// ParseSymbol converts a single printable character into a Symbol.
func ParseSymbol(s string) (Symbol, error) {
	if utf8.RuneCountInString(s) != 1 {
		return Empty, errors.Wrapf(ErrInvalidSymbol, "symbol %q must be exactly one character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	sym := Symbol(r)
	if !sym.Valid() {
		return Empty, errors.Wrapf(ErrInvalidSymbol, "symbol %q is reserved", s)
	}
	return sym, nil
}

// Valid reports whether the symbol can be placed on a grid.
func (s Symbol) Valid() bool {
	if s == Empty || s == utf8.RuneError {
		return false
	}
	for _, r := range reservedSymbols {
		if rune(s) == r {
			return false
		}
	}
	return true
}

func (s Symbol) String() string {
	if s == Empty {
		return "_"
	}
	return string(rune(s))
}
