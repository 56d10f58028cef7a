package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-player/internal/entity"
	"github.com/rocketscienceinc/tictactoe-player/internal/usecase"
)

var (
	ErrMissingParam = errors.New("missing query parameter")
	ErrSizeTooLarge = errors.New("board size too large")
)

type moveAdvisor interface {
	Recommend(ctx context.Context, req usecase.MoveRequest) (*entity.Recommendation, error)
}

type MoveHandler struct {
	logger       *slog.Logger
	advisor      moveAdvisor
	maxBoardSize int
}

func NewMoveHandler(logger *slog.Logger, advisor moveAdvisor, maxBoardSize int) *MoveHandler {
	return &MoveHandler{
		logger:       logger.With("component", "rest"),
		advisor:      advisor,
		maxBoardSize: maxBoardSize,
	}
}

// GetMove - GET /move?gid=<uuid>&size=3&playing=X&moves=X-1-1_O-0-0.
// Malformed query strings and sizes above the configured cap are rejected with 400;
// everything past that is a 200 text reply.
func (that *MoveHandler) GetMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "GetMove")

	req, err := decodeMoveRequest(r.URL.Query(), that.maxBoardSize)
	if err != nil {
		log.Error("invalid query", "error", err)
		http.Error(w, "Invalid query string", http.StatusBadRequest)
		return
	}

	rec, err := that.advisor.Recommend(r.Context(), req)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write([]byte(usecase.ReplyText(rec, err))); err != nil {
		log.Error("failed to write response", "error", err)
	}
}

func decodeMoveRequest(query url.Values, maxBoardSize int) (usecase.MoveRequest, error) {
	for _, name := range []string{"gid", "size", "playing", "moves"} {
		if !query.Has(name) {
			return usecase.MoveRequest{}, fmt.Errorf("%w: %s", ErrMissingParam, name)
		}
	}

	gid, err := uuid.Parse(query.Get("gid"))
	if err != nil {
		return usecase.MoveRequest{}, fmt.Errorf("invalid gid: %w", err)
	}

	size, err := strconv.ParseUint(query.Get("size"), 10, 32)
	if err != nil {
		return usecase.MoveRequest{}, fmt.Errorf("invalid size: %w", err)
	}

	if size > uint64(maxBoardSize) {
		return usecase.MoveRequest{}, fmt.Errorf("%w: %d > %d", ErrSizeTooLarge, size, maxBoardSize)
	}

	return usecase.MoveRequest{
		GameID:  gid.String(),
		Size:    int(size),
		Playing: query.Get("playing"),
		Moves:   query.Get("moves"),
	}, nil
}
