package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-player/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		history string
		want    Outcome
	}{
		{name: "row for X", size: 3, history: "X-1-0_X-1-1_X-1-2", want: OutcomeXWins},
		{name: "row for O", size: 3, history: "O-2-0_O-2-1_O-2-2_X-0-0", want: OutcomeOWins},
		{name: "column for O", size: 3, history: "O-0-1_O-1-1_O-2-1", want: OutcomeOWins},
		{name: "main diagonal for X", size: 3, history: "X-0-0_X-1-1_X-2-2", want: OutcomeXWins},
		{name: "anti-diagonal for O", size: 3, history: "O-0-2_O-1-1_O-2-0", want: OutcomeOWins},
		{name: "ongoing game", size: 3, history: "X-0-0_O-0-1_X-1-1", want: OutcomeUndecided},
		{name: "drawn full board", size: 3, history: "X-0-0_O-0-1_X-0-2_X-1-0_O-1-1_X-1-2_O-2-0_X-2-1_O-2-2", want: OutcomeUndecided},
		{name: "single cell board", size: 1, history: "O-0-0", want: OutcomeOWins},
		{name: "four in a row is not a line on 5x5", size: 5, history: "X-0-0_X-0-1_X-0-2_X-0-3", want: OutcomeUndecided},
		{name: "full row on 5x5", size: 5, history: "X-0-0_X-0-1_X-0-2_X-0-3_X-0-4", want: OutcomeXWins},
		{name: "anti-diagonal on 4x4", size: 4, history: "X-0-3_X-1-2_X-2-1_X-3-0", want: OutcomeXWins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a decoded board
			board, err := DecodeBoard(tt.size, tt.history)
			require.NoError(t, err)

			// When: the board is evaluated
			outcome := Evaluate(board)

			// Then: the expected outcome is reported
			assert.Equal(t, tt.want, outcome)
		})
	}
}

func TestEvaluate_EmptyBoard(t *testing.T) {
	board, err := entity.NewBoard(3)
	require.NoError(t, err)

	assert.Equal(t, OutcomeUndecided, Evaluate(board))
}

func TestOutcome_Score(t *testing.T) {
	assert.Equal(t, 1, OutcomeXWins.Score())
	assert.Equal(t, -1, OutcomeOWins.Score())
	assert.Equal(t, 0, OutcomeUndecided.Score())
}
