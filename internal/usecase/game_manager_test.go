package usecase

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

func TestGameManager_CreateGame(t *testing.T) {
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger)

	// When: creating two games
	first := manager.CreateGame(ctx)
	second := manager.CreateGame(ctx)

	// Then: both are fresh and have different ids
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, entity.StateXToMove, first.State())

	stored, err := manager.GetGameByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
}

func TestGameManager_MakeTurn(t *testing.T) {
	t.Run("Applies the move and returns a snapshot", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger)
		game := manager.CreateGame(ctx)

		// When: X moves to the center
		updated, err := manager.MakeTurn(ctx, game.ID, 4)

		// Then: the snapshot shows the move, the earlier snapshot does not
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, updated.Board()[4])
		assert.Equal(t, entity.StateOToMove, updated.State())
		assert.Equal(t, entity.EmptyCell, game.Board()[4])
	})

	t.Run("Rejected move returns the unchanged game", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger)
		game := manager.CreateGame(ctx)
		_, err := manager.MakeTurn(ctx, game.ID, 4)
		require.NoError(t, err)

		// When: O tries the occupied center
		updated, err := manager.MakeTurn(ctx, game.ID, 4)

		// Then: ErrCellOccupied and O still to move
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.NotNil(t, updated)
		assert.Equal(t, entity.StateOToMove, updated.State())
		assert.Equal(t, 1, updated.Moves())
	})

	t.Run("Unknown game", func(t *testing.T) {
		ctx, st := suite.New(t)
		manager := NewGameManager(st.Logger)

		game, err := manager.MakeTurn(ctx, "missing", 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
		assert.Nil(t, game)
	})
}

func TestGameManager_ResetGame(t *testing.T) {
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger)
	game := manager.CreateGame(ctx)

	for _, cell := range []int{0, 4, 1, 3, 2} {
		_, err := manager.MakeTurn(ctx, game.ID, cell)
		require.NoError(t, err)
	}

	// When: resetting a finished game
	reset, err := manager.ResetGame(ctx, game.ID)

	// Then: the same id plays again from scratch
	require.NoError(t, err)
	assert.Equal(t, game.ID, reset.ID)
	assert.Equal(t, entity.StateXToMove, reset.State())

	_, err = manager.ResetGame(ctx, "missing")
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
}

func TestGameManager_DeleteGame(t *testing.T) {
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger)
	game := manager.CreateGame(ctx)

	// When: deleting the game
	require.NoError(t, manager.DeleteGame(ctx, game.ID))

	// Then: it is gone
	_, err := manager.GetGameByID(ctx, game.ID)
	require.ErrorIs(t, err, apperror.ErrGameNotFound)
	require.ErrorIs(t, manager.DeleteGame(ctx, game.ID), apperror.ErrGameNotFound)
}

func TestGameManager_ConcurrentGames(t *testing.T) {
	ctx, st := suite.New(t)
	manager := NewGameManager(st.Logger)

	const games = 16
	ids := make([]string, games)
	for i := range ids {
		ids[i] = manager.CreateGame(ctx).ID
	}

	// When: every game plays the same top row win in its own goroutine
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, cell := range []int{0, 4, 1, 3, 2} {
				_, err := manager.MakeTurn(ctx, id, cell)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	// Then: every game ended the same way without touching the others
	for _, id := range ids {
		game, err := manager.GetGameByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, entity.StateXWins, game.State())
		assert.Equal(t, 5, game.Moves())
	}
}
