package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidInput = errors.New("input is not a cell number")
	ErrGameNotFound = errors.New("game not found")
	ErrAborted      = errors.New("game aborted by player")
)

// MoveError - a rejected move. Err is one of ErrGameFinished, ErrInvalidCell or ErrCellOccupied.
type MoveError struct {
	Cell int
	Err  error
}

func (that *MoveError) Error() string {
	return fmt.Sprintf("move to cell %d rejected: %v", that.Cell, that.Err)
}

func (that *MoveError) Unwrap() error {
	return that.Err
}
