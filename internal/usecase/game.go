package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// moveSource - blocks until the next move is entered.
// Returns apperror.ErrInvalidInput for unparsable input, apperror.ErrAborted for the exit keyword
// and io.EOF when the input is exhausted.
type moveSource interface {
	NextMove(ctx context.Context) (int, error)
}

type presenter interface {
	Render(game *entity.Game)
	Prompt(game *entity.Game)
	ShowError(err error)
}

type gameManager interface {
	CreateGame(ctx context.Context) *entity.Game
	MakeTurn(ctx context.Context, id string, cell int) (*entity.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

// GameLoop - plays one game between two players sharing a move source.
type GameLoop struct {
	logger *slog.Logger

	manager   gameManager
	source    moveSource
	presenter presenter
}

func NewGameLoop(logger *slog.Logger, manager gameManager, source moveSource, presenter presenter) *GameLoop {
	return &GameLoop{
		logger:    logger.With("component", "game_loop"),
		manager:   manager,
		source:    source,
		presenter: presenter,
	}
}

// Run - prompts for moves until the game ends, the players abort or the input runs out.
// It returns the last state of the game; the error is non-nil when reading fails, ctx is done or the game is gone from the manager.
func (that *GameLoop) Run(ctx context.Context) (*entity.Game, error) {
	game := that.manager.CreateGame(ctx)
	log := that.logger.With("game_id", game.ID)

	defer func() {
		if err := that.manager.DeleteGame(context.WithoutCancel(ctx), game.ID); err != nil {
			log.Error("could not delete game", "error", err)
		}
	}()

	log.Info("game started")
	that.presenter.Render(game)

	for !game.IsTerminal() {
		that.presenter.Prompt(game)

		cell, err := that.source.NextMove(ctx)
		switch {
		case err == nil:
		case errors.Is(err, apperror.ErrInvalidInput):
			that.presenter.ShowError(err)
			continue
		case errors.Is(err, apperror.ErrAborted):
			log.Info("game aborted", "moves", game.Moves())
			return game, nil
		case errors.Is(err, io.EOF):
			log.Info("input closed", "moves", game.Moves())
			return game, nil
		default:
			return game, fmt.Errorf("failed to read move: %w", err)
		}

		next, err := that.manager.MakeTurn(ctx, game.ID, cell)
		if errors.Is(err, apperror.ErrGameNotFound) {
			return game, fmt.Errorf("failed to make turn: %w", err)
		}

		game = next
		if err != nil {
			that.presenter.ShowError(err)
			continue
		}

		that.presenter.Render(game)
	}

	log.Info("game over", "state", game.State(), "moves", game.Moves())

	return game, nil
}
