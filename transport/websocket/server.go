package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-player/internal/entity"
	"github.com/rocketscienceinc/tictactoe-player/internal/usecase"
)

const (
	actionMoveRequest = "move:request"

	writeTimeout = 10 * time.Second
)

var (
	errUnknownAction = errors.New("unknown action")
	errSizeTooLarge  = errors.New("board size too large")
)

type moveAdvisor interface {
	Recommend(ctx context.Context, req usecase.MoveRequest) (*entity.Recommendation, error)
}

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MoveRequestPayload struct {
	GameID  string `json:"gid"`
	Size    int    `json:"size"`
	Playing string `json:"playing"`
	Moves   string `json:"moves"`
}

type ResponsePayload struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Server struct {
	logger       *slog.Logger
	advisor      moveAdvisor
	upgrader     websocket.Upgrader
	maxBoardSize int

	handlers map[string]func(ctx context.Context, msg *Message) ResponsePayload
}

func New(logger *slog.Logger, advisor moveAdvisor, maxBoardSize int) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		advisor: advisor,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		maxBoardSize: maxBoardSize,
	}

	server.handlers = map[string]func(context.Context, *Message) ResponsePayload{
		actionMoveRequest: server.handleMoveRequest,
	}

	return server
}

// Start - starts WebSocket server on /ws until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveConnection(ctx, w, r)
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeHTTP - lets the server be mounted on any mux; used by tests.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.serveConnection(r.Context(), w, r)
}

func (that *Server) serveConnection(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveConnection")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	log.Info("client connected", "remote", r.RemoteAddr)

	for {
		var msg Message
		if err = conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("failed to read message", "error", err)
			}
			return
		}

		response := that.dispatch(ctx, &msg)

		if err = that.sendMessage(conn, msg.Action, response); err != nil {
			log.Error("failed to send response", "error", err)
			return
		}
	}
}

func (that *Server) dispatch(ctx context.Context, msg *Message) ResponsePayload {
	handler, ok := that.handlers[msg.Action]
	if !ok {
		that.logger.Warn("unknown action", "action", msg.Action)
		return ResponsePayload{Error: errUnknownAction.Error()}
	}

	return handler(ctx, msg)
}

func (that *Server) handleMoveRequest(ctx context.Context, msg *Message) ResponsePayload {
	var payload MoveRequestPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		that.logger.Error("failed to unmarshal payload", "method", "handleMoveRequest", "error", err)
		return ResponsePayload{Error: "invalid payload"}
	}

	if payload.Size > that.maxBoardSize {
		that.logger.Warn("board size above the cap", "method", "handleMoveRequest", "size", payload.Size)
		return ResponsePayload{Error: errSizeTooLarge.Error()}
	}

	rec, err := that.advisor.Recommend(ctx, usecase.MoveRequest{
		GameID:  payload.GameID,
		Size:    payload.Size,
		Playing: payload.Playing,
		Moves:   payload.Moves,
	})

	return ResponsePayload{Result: usecase.ReplyText(rec, err)}
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: payloadJSON}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
