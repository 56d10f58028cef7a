package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-player/internal/config"
	"github.com/rocketscienceinc/tictactoe-player/internal/repository"
	"github.com/rocketscienceinc/tictactoe-player/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-player/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-player/transport/rest"
	"github.com/rocketscienceinc/tictactoe-player/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	recRepo, closeRepo, err := newRecommendationRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	advisor := usecase.NewMoveAdvisor(logger, recRepo)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, advisor, conf.MaxBoardSize)); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, advisor, conf.MaxBoardSize)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

// newRecommendationRepository - Redis backed cache when enabled, a no-op cache otherwise.
func newRecommendationRepository(
	ctx context.Context,
	log *slog.Logger,
	conf *config.Config,
) (repository.RecommendationRepository, func(), error) {
	if !conf.Redis.Enabled {
		log.Info("Recommendation cache disabled")
		return repository.NewNopRecommendationRepository(), func() {}, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewRecommendationRepository(redisStorage, conf.CacheTTL), closeFn, nil
}
