package apperror

import "errors"

var (
	ErrInvalidSize       = errors.New("board size must be positive")
	ErrOutOfBounds       = errors.New("move out of bounds")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrMalformedMove     = errors.New("invalid move format")
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidPlayer     = errors.New("invalid player")

	ErrCannotComply    = errors.New("cannot comply")
	ErrNoMoveAvailable = errors.New("no move available")
)
