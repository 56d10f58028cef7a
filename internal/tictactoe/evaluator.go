package tictactoe

import "github.com/rocketscienceinc/tictactoe-player/internal/entity"

type Outcome int

const (
	OutcomeUndecided Outcome = iota
	OutcomeXWins
	OutcomeOWins
)

// Score - projects the outcome onto X's point of view.
func (that Outcome) Score() int {
	switch that {
	case OutcomeXWins:
		return 1
	case OutcomeOWins:
		return -1
	default:
		return 0
	}
}

func (that Outcome) String() string {
	switch that {
	case OutcomeXWins:
		return "x_wins"
	case OutcomeOWins:
		return "o_wins"
	default:
		return "undecided"
	}
}

func outcomeOf(symbol entity.Symbol) Outcome {
	if symbol == entity.SymbolX {
		return OutcomeXWins
	}
	return OutcomeOWins
}

var symbols = [2]entity.Symbol{entity.SymbolX, entity.SymbolO}

// Evaluate - reports a win when some row, column or diagonal is completely
// filled by one symbol. A line must span the whole board, for every size.
// A full board without such a line is still OutcomeUndecided.
func Evaluate(board *entity.Board) Outcome {
	size := board.Size()

	for i := range size {
		row := func(j int) (int, int) { return i, j }
		col := func(j int) (int, int) { return j, i }

		if winner, ok := lineWinner(board, row); ok {
			return outcomeOf(winner)
		}
		if winner, ok := lineWinner(board, col); ok {
			return outcomeOf(winner)
		}
	}

	if winner, ok := lineWinner(board, func(j int) (int, int) { return j, j }); ok {
		return outcomeOf(winner)
	}
	if winner, ok := lineWinner(board, func(j int) (int, int) { return j, size - 1 - j }); ok {
		return outcomeOf(winner)
	}

	return OutcomeUndecided
}

// lineWinner checks the line addressed by at for X first, then O.
func lineWinner(board *entity.Board, at func(j int) (int, int)) (entity.Symbol, bool) {
	for _, symbol := range symbols {
		if lineOf(board, symbol, at) {
			return symbol, true
		}
	}
	return 0, false
}

func lineOf(board *entity.Board, symbol entity.Symbol, at func(j int) (int, int)) bool {
	want := entity.CellOf(symbol)

	for j := range board.Size() {
		if board.At(at(j)) != want {
			return false
		}
	}

	return true
}
