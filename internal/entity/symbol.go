package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-player/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"
)

// Symbol is the marker a player places. Only SymbolX and SymbolO are valid.
type Symbol uint8

const (
	SymbolX Symbol = iota + 1
	SymbolO
)

// ParseSymbol - accepts exactly the canonical literals "X" and "O".
func ParseSymbol(value string) (Symbol, error) {
	switch value {
	case PlayerX:
		return SymbolX, nil
	case PlayerO:
		return SymbolO, nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidSymbol, value)
	}
}

func (that Symbol) Opponent() Symbol {
	if that == SymbolX {
		return SymbolO
	}
	return SymbolX
}

func (that Symbol) String() string {
	switch that {
	case SymbolX:
		return PlayerX
	case SymbolO:
		return PlayerO
	default:
		return fmt.Sprintf("Symbol(%d)", uint8(that))
	}
}

// Cell is either EmptyCell or occupied by one Symbol.
type Cell uint8

const EmptyCell Cell = 0

func CellOf(symbol Symbol) Cell {
	return Cell(symbol)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Symbol - returns the occupying symbol, ok is false for an empty cell.
func (that Cell) Symbol() (Symbol, bool) {
	if that.IsEmpty() {
		return 0, false
	}
	return Symbol(that), true
}
