package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-player/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-player/internal/entity"
)

const (
	moveSeparator  = "_"
	fieldSeparator = "-"
)

// ParseMoves - parses a history like "X-1-1_O-0-0" into moves, keeping their order.
// Every token must be a full move, so an empty history is malformed.
func ParseMoves(history string) ([]entity.Move, error) {
	tokens := strings.Split(history, moveSeparator)
	moves := make([]entity.Move, 0, len(tokens))

	for _, token := range tokens {
		move, err := parseMove(token)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

func parseMove(token string) (entity.Move, error) {
	fields := strings.Split(token, fieldSeparator)
	if len(fields) != 3 {
		return entity.Move{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, token)
	}

	symbol, err := entity.ParseSymbol(fields[0])
	if err != nil {
		return entity.Move{}, err
	}

	row, err := parseCoordinate(fields[1])
	if err != nil {
		return entity.Move{}, fmt.Errorf("row: %w", err)
	}

	col, err := parseCoordinate(fields[2])
	if err != nil {
		return entity.Move{}, fmt.Errorf("column: %w", err)
	}

	return entity.Move{Symbol: symbol, Position: entity.Position{Row: row, Col: col}}, nil
}

func parseCoordinate(field string) (int, error) {
	value, err := strconv.Atoi(field)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidCoordinate, field)
	}
	return value, nil
}

// DecodeBoard - builds a fresh size×size board and applies the history in order.
// Turn alternation is not checked. On failure no board is returned.
func DecodeBoard(size int, history string) (*entity.Board, error) {
	moves, err := ParseMoves(history)
	if err != nil {
		return nil, fmt.Errorf("failed to parse moves: %w", err)
	}

	board, err := entity.NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	for _, move := range moves {
		if err = board.PlaceAt(move.Row, move.Col, move.Symbol); err != nil {
			return nil, fmt.Errorf("failed to apply move %s: %w", move, err)
		}
	}

	return board, nil
}
