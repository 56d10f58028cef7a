package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-player/internal/apperror"
)

// Board is a square grid of cells plus the symbol notionally due to move.
// The grid is never resized after construction.
type Board struct {
	size  int
	cells [][]Cell
	turn  Symbol
}

// NewBoard - allocates size*size cells up front; callers taking size from clients cap it first.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidSize, size)
	}

	cells := make([][]Cell, size)
	for row := range cells {
		cells[row] = make([]Cell, size)
	}

	return &Board{
		size:  size,
		cells: cells,
		turn:  SymbolX,
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) Turn() Symbol {
	return that.turn
}

func (that *Board) At(row, col int) Cell {
	return that.cells[row][col]
}

// PlaceAt - marks the cell with symbol and hands the turn to the opponent.
func (that *Board) PlaceAt(row, col int, symbol Symbol) error {
	if !that.inBounds(row, col) {
		return fmt.Errorf("%w: %d-%d", apperror.ErrOutOfBounds, row, col)
	}

	if !that.cells[row][col].IsEmpty() {
		return fmt.Errorf("%w: %d-%d", apperror.ErrCellOccupied, row, col)
	}

	that.cells[row][col] = CellOf(symbol)
	that.turn = symbol.Opponent()

	return nil
}

// Play - places the symbol whose turn it is.
func (that *Board) Play(row, col int) error {
	return that.PlaceAt(row, col, that.turn)
}

// Speculate - writes symbol into a cell the caller knows is empty, leaving turn untouched.
func (that *Board) Speculate(row, col int, symbol Symbol) {
	that.cells[row][col] = CellOf(symbol)
}

// ClearAt - empties a cell. Only for undoing a speculative placement.
func (that *Board) ClearAt(row, col int) {
	that.cells[row][col] = EmptyCell
}

func (that *Board) IsFull() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell.IsEmpty() {
				return false
			}
		}
	}
	return true
}

// EmptyCells - returns empty positions in row-major order.
func (that *Board) EmptyCells() []Position {
	positions := make([]Position, 0, that.size*that.size)
	for row := range that.cells {
		for col, cell := range that.cells[row] {
			if cell.IsEmpty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

func (that *Board) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < that.size && col < that.size
}

func (that *Board) String() string {
	var sb strings.Builder

	for row := range that.cells {
		for col, cell := range that.cells[row] {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if symbol, ok := cell.Symbol(); ok {
				sb.WriteString(symbol.String())
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')

		if row < that.size-1 {
			sb.WriteString(strings.Repeat("-", that.size*2-1))
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
