package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - plays one game on the given input and output. Returns nil when the game ends,
// the players type the exit keyword, the input closes or the process is interrupted.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	gameManager := usecase.NewGameManager(logger)
	source := console.NewLineSource(ctx, in, conf.Console.ExitKeyword)
	presenter := console.NewPresenter(out, !conf.Console.NoColor, conf.Console.ExitKeyword)

	gameLoop := usecase.NewGameLoop(logger, gameManager, source, presenter)

	if _, err := gameLoop.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			fmt.Fprintln(out)
			return nil
		}

		return fmt.Errorf("game loop failed: %w", err)
	}

	return nil
}
