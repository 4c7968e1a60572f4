package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger
}

// New - a context bounded by maxWaitDuration and a logger that only speaks up on errors.
// Set TEST_LOG_LEVEL=debug to see everything.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	level := slog.LevelError
	if os.Getenv("TEST_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
	}
}
