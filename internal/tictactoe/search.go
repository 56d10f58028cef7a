package tictactoe

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-player/internal/entity"
)

// evaluate is swapped in tests to interrupt a search midway.
var evaluate = Evaluate

// Result is a minimax evaluation from X's point of view and the move that
// achieves it. Move is nil only when the position is already terminal.
type Result struct {
	Score int
	Move  *entity.Position
}

// BestMove - searches the whole game tree for player and returns the
// optimal move. The board is restored before returning.
//
// The search is exhaustive and keeps no transposition table, so its cost
// grows combinatorially with the number of empty cells. Boards larger than
// 3x3 with few moves played are impractical.
func BestMove(board *entity.Board, player entity.Symbol) Result {
	return Minimax(board, player, math.MinInt, math.MaxInt)
}

// Minimax - alpha-beta search. X maximizes, O minimizes. Candidates are tried
// in row-major order and the best move only changes on strict improvement,
// so the earliest of equally scored moves wins. Wins are not discounted by depth.
func Minimax(board *entity.Board, player entity.Symbol, alpha, beta int) Result {
	score := evaluate(board).Score()
	if score != 0 || board.IsFull() {
		return Result{Score: score}
	}

	var bestMove *entity.Position

	if player == entity.SymbolX {
		maxEval := math.MinInt

		for _, cell := range board.EmptyCells() {
			eval := tryMove(board, cell, player, alpha, beta)

			if eval > maxEval {
				maxEval = eval
				bestMove = &cell
			}

			alpha = max(alpha, eval)
			if beta <= alpha {
				break
			}
		}

		return Result{Score: maxEval, Move: bestMove}
	}

	minEval := math.MaxInt

	for _, cell := range board.EmptyCells() {
		eval := tryMove(board, cell, player, alpha, beta)

		if eval < minEval {
			minEval = eval
			bestMove = &cell
		}

		beta = min(beta, eval)
		if beta <= alpha {
			break
		}
	}

	return Result{Score: minEval, Move: bestMove}
}

// tryMove places player on cell, scores the reply and always clears the cell.
func tryMove(board *entity.Board, cell entity.Position, player entity.Symbol, alpha, beta int) int {
	board.Speculate(cell.Row, cell.Col, player)
	defer board.ClearAt(cell.Row, cell.Col)

	return Minimax(board, player.Opponent(), alpha, beta).Score
}
