package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/rocketscienceinc/tictactoe-player/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-player/internal/entity"
	"github.com/rocketscienceinc/tictactoe-player/internal/repository"
	"github.com/rocketscienceinc/tictactoe-player/internal/tictactoe"
)

type recommendationRepo interface {
	Get(ctx context.Context, key string) (*entity.Recommendation, error)
	Save(ctx context.Context, key string, rec *entity.Recommendation) error
}

// MoveRequest is one "what should I play" question from the game server.
type MoveRequest struct {
	GameID  string
	Size    int
	Playing string
	Moves   string
}

func (that MoveRequest) cacheKey() string {
	return strconv.Itoa(that.Size) + ":" + that.Playing + ":" + that.Moves
}

type MoveAdvisor struct {
	logger   *slog.Logger
	recRepo  recommendationRepo
	searches singleflight.Group
}

func NewMoveAdvisor(logger *slog.Logger, recRepo recommendationRepo) *MoveAdvisor {
	return &MoveAdvisor{
		logger:  logger.With("component", "move_advisor"),
		recRepo: recRepo,
	}
}

// Recommend - decodes the history and searches for the best move of the requested player.
// Every decoding problem is reported as apperror.ErrCannotComply, a finished
// position as apperror.ErrNoMoveAvailable.
func (that *MoveAdvisor) Recommend(ctx context.Context, req MoveRequest) (*entity.Recommendation, error) {
	log := that.logger.With("method", "Recommend", "gameID", req.GameID)

	log.Info("received request", "size", req.Size, "playing", req.Playing, "moves", req.Moves)

	board, err := tictactoe.DecodeBoard(req.Size, req.Moves)
	if err != nil {
		log.Error("failed to decode moves", "error", err)
		return nil, fmt.Errorf("%w: %w", apperror.ErrCannotComply, err)
	}

	player, err := entity.ParseSymbol(req.Playing)
	if err != nil {
		log.Error("invalid player", "playing", req.Playing)
		return nil, fmt.Errorf("%w: %w: %q", apperror.ErrCannotComply, apperror.ErrInvalidPlayer, req.Playing)
	}

	log.Debug("decoded board", "board", board.String())

	key := req.cacheKey()

	rec, err := that.recRepo.Get(ctx, key)
	if err == nil {
		log.Info("best move from cache", "row", rec.Row, "col", rec.Col)
		return rec, nil
	}
	if !errors.Is(err, repository.ErrRecommendationNotFound) {
		log.Warn("failed to read recommendation cache", "error", err)
	}

	v, _, shared := that.searches.Do(key, func() (any, error) {
		return tictactoe.BestMove(board, player), nil
	})
	result := v.(tictactoe.Result) //nolint: forcetypeassert // only Result is stored

	if result.Move == nil {
		log.Error("no best move found", "score", result.Score)
		return nil, apperror.ErrNoMoveAvailable
	}

	rec = &entity.Recommendation{
		Symbol: player.String(),
		Row:    result.Move.Row,
		Col:    result.Move.Col,
		Score:  result.Score,
	}

	log.Info("best move", "row", rec.Row, "col", rec.Col, "score", rec.Score, "shared", shared)

	if err = that.recRepo.Save(ctx, key, rec); err != nil {
		log.Warn("failed to save recommendation", "error", err)
	}

	return rec, nil
}

const (
	replyCannotComply = "Error:Sorry. Can't do it bro."
	replyNoMove       = "Sorry. Can't do it bro."
)

// ReplyText - renders the outcome of Recommend as the plain text the game
// server reads. Failures are ordinary replies, not transport errors.
func ReplyText(rec *entity.Recommendation, err error) string {
	switch {
	case err == nil:
		return rec.Text()
	case errors.Is(err, apperror.ErrNoMoveAvailable):
		return replyNoMove
	default:
		return replyCannotComply
	}
}
