package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/rocketscienceinc/tictactoe-player/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-player/internal/entity"
	"github.com/rocketscienceinc/tictactoe-player/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRecRepo struct {
	mu      sync.Mutex
	entries map[string]*entity.Recommendation
	getErr  error
	saveErr error
	saves   int
}

func newMemoryRecRepo() *memoryRecRepo {
	return &memoryRecRepo{entries: make(map[string]*entity.Recommendation)}
}

func (that *memoryRecRepo) Get(_ context.Context, key string) (*entity.Recommendation, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.getErr != nil {
		return nil, that.getErr
	}

	rec, ok := that.entries[key]
	if !ok {
		return nil, repository.ErrRecommendationNotFound
	}
	return rec, nil
}

func (that *memoryRecRepo) Save(_ context.Context, key string, rec *entity.Recommendation) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.saves++
	if that.saveErr != nil {
		return that.saveErr
	}

	that.entries[key] = rec
	return nil
}

func newTestAdvisor(recRepo recommendationRepo) *MoveAdvisor {
	return NewMoveAdvisor(slog.New(slog.NewTextHandler(io.Discard, nil)), recRepo)
}

func TestMoveAdvisor_Recommend(t *testing.T) {
	t.Run("Recommends the winning move", func(t *testing.T) {
		// Given: X can complete the top row
		recRepo := newMemoryRecRepo()
		advisor := newTestAdvisor(recRepo)

		// When: a move for X is requested
		rec, err := advisor.Recommend(context.Background(), MoveRequest{
			GameID: "game-1", Size: 3, Playing: entity.PlayerX, Moves: "X-0-0_O-1-1_X-0-1_O-1-0",
		})

		// Then: X is told to play (0,2) and the answer is cached
		require.NoError(t, err)
		assert.Equal(t, &entity.Recommendation{Symbol: entity.PlayerX, Row: 0, Col: 2, Score: 1}, rec)
		assert.Equal(t, "Move:X-0-2", rec.Text())
		assert.Contains(t, recRepo.entries, "3:X:X-0-0_O-1-1_X-0-1_O-1-0")
	})

	t.Run("Returns cached recommendation", func(t *testing.T) {
		// Given: a cached answer for the request
		recRepo := newMemoryRecRepo()
		cached := &entity.Recommendation{Symbol: entity.PlayerO, Row: 2, Col: 2}
		recRepo.entries["3:O:X-1-1"] = cached
		advisor := newTestAdvisor(recRepo)

		// When: the same request comes in
		rec, err := advisor.Recommend(context.Background(), MoveRequest{Size: 3, Playing: entity.PlayerO, Moves: "X-1-1"})

		// Then: the cached answer is returned without saving again
		require.NoError(t, err)
		assert.Same(t, cached, rec)
		assert.Zero(t, recRepo.saves)
	})

	t.Run("Cache failures do not fail the request", func(t *testing.T) {
		recRepo := newMemoryRecRepo()
		recRepo.getErr = errors.New("connection refused")
		recRepo.saveErr = errors.New("connection refused")
		advisor := newTestAdvisor(recRepo)

		rec, err := advisor.Recommend(context.Background(), MoveRequest{Size: 3, Playing: entity.PlayerO, Moves: "X-1-1_O-0-0"})

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerO, rec.Symbol)
		assert.Equal(t, 1, recRepo.saves)
	})

	t.Run("Decoding errors collapse to ErrCannotComply", func(t *testing.T) {
		tests := []struct {
			name  string
			req   MoveRequest
			cause error
		}{
			{name: "malformed move", req: MoveRequest{Size: 3, Playing: "X", Moves: "X-1"}, cause: apperror.ErrMalformedMove},
			{name: "invalid symbol", req: MoveRequest{Size: 3, Playing: "X", Moves: "Y-1-1"}, cause: apperror.ErrInvalidSymbol},
			{name: "invalid coordinate", req: MoveRequest{Size: 3, Playing: "X", Moves: "X-a-1"}, cause: apperror.ErrInvalidCoordinate},
			{name: "out of bounds", req: MoveRequest{Size: 3, Playing: "X", Moves: "X-5-1"}, cause: apperror.ErrOutOfBounds},
			{name: "occupied", req: MoveRequest{Size: 3, Playing: "X", Moves: "X-1-1_O-1-1"}, cause: apperror.ErrCellOccupied},
			{name: "invalid player", req: MoveRequest{Size: 3, Playing: "Z", Moves: "X-1-1"}, cause: apperror.ErrInvalidPlayer},
			{name: "invalid size", req: MoveRequest{Size: 0, Playing: "X", Moves: "X-0-0"}, cause: apperror.ErrInvalidSize},
			{name: "empty history", req: MoveRequest{Size: 3, Playing: "X", Moves: ""}, cause: apperror.ErrMalformedMove},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				advisor := newTestAdvisor(newMemoryRecRepo())

				rec, err := advisor.Recommend(context.Background(), tt.req)

				require.ErrorIs(t, err, apperror.ErrCannotComply)
				require.ErrorIs(t, err, tt.cause)
				assert.Nil(t, rec)
			})
		}
	})

	t.Run("Finished game has no move", func(t *testing.T) {
		// Given: X already owns the top row
		recRepo := newMemoryRecRepo()
		advisor := newTestAdvisor(recRepo)

		// When: a move for O is requested
		rec, err := advisor.Recommend(context.Background(), MoveRequest{
			Size: 3, Playing: entity.PlayerO, Moves: "X-0-0_O-1-1_X-0-1_O-1-0_X-0-2",
		})

		// Then: ErrNoMoveAvailable is returned and nothing is cached
		require.ErrorIs(t, err, apperror.ErrNoMoveAvailable)
		assert.Nil(t, rec)
		assert.Empty(t, recRepo.entries)
	})

	t.Run("Concurrent identical requests agree", func(t *testing.T) {
		advisor := newTestAdvisor(repository.NewNopRecommendationRepository())
		req := MoveRequest{Size: 3, Playing: entity.PlayerX, Moves: "X-1-1_O-0-0"}

		var wg sync.WaitGroup
		results := make([]*entity.Recommendation, 8)
		for i := range results {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec, err := advisor.Recommend(context.Background(), req)
				assert.NoError(t, err)
				results[i] = rec
			}()
		}
		wg.Wait()

		for _, rec := range results[1:] {
			assert.Equal(t, results[0], rec)
		}
	})
}

func TestReplyText(t *testing.T) {
	assert.Equal(t, "Move:O-0-2", ReplyText(&entity.Recommendation{Symbol: entity.PlayerO, Row: 0, Col: 2}, nil))
	assert.Equal(t, "Sorry. Can't do it bro.", ReplyText(nil, apperror.ErrNoMoveAvailable))
	assert.Equal(t, "Error:Sorry. Can't do it bro.", ReplyText(nil, apperror.ErrCannotComply))
	assert.Equal(t, "Error:Sorry. Can't do it bro.", ReplyText(nil, errors.New("boom")))
}
