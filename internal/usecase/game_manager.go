package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// GameManager - keeps independent games by id. Games live in memory until deleted.
type GameManager struct {
	logger *slog.Logger

	mu    sync.Mutex
	games map[string]*entity.Game
}

func NewGameManager(logger *slog.Logger) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		games:  make(map[string]*entity.Game),
	}
}

// CreateGame - starts a new game and returns its snapshot.
func (that *GameManager) CreateGame(_ context.Context) *entity.Game {
	game := entity.NewGame(uuid.New().String())

	that.mu.Lock()
	that.games[game.ID] = game
	that.mu.Unlock()

	that.logger.Debug("game created", "game_id", game.ID)

	return game.Snapshot()
}

func (that *GameManager) GetGameByID(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(id)
	if err != nil {
		return nil, err
	}

	return game.Snapshot(), nil
}

// MakeTurn - applies a move to the game. The returned snapshot reflects the game after the call,
// also when the move was rejected.
func (that *GameManager) MakeTurn(_ context.Context, id string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "game_id", id, "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(id)
	if err != nil {
		return nil, err
	}

	if err = game.MakeTurn(cell); err != nil {
		log.Debug("move rejected", "error", err)

		return game.Snapshot(), fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("move applied", "state", game.State(), "moves", game.Moves())

	if game.IsTerminal() {
		log.Info("game finished", "state", game.State(), "winner", game.Winner().String())
	}

	return game.Snapshot(), nil
}

// ResetGame - starts the game with the same id over.
func (that *GameManager) ResetGame(_ context.Context, id string) (*entity.Game, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(id)
	if err != nil {
		return nil, err
	}

	game.Reset()
	that.logger.Debug("game reset", "game_id", id)

	return game.Snapshot(), nil
}

func (that *GameManager) DeleteGame(_ context.Context, id string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := that.getGameByID(id); err != nil {
		return err
	}

	delete(that.games, id)
	that.logger.Debug("game deleted", "game_id", id)

	return nil
}

func (that *GameManager) getGameByID(id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameNotFound, id)
	}

	return game, nil
}
