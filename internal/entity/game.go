package entity

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// BoardSize - number of cells on the 3x3 board.
const BoardSize = 9

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

func (that Mark) String() string {
	if that == EmptyCell {
		return " "
	}

	return string(that)
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}

	return PlayerX
}

type State string

const (
	StateXToMove State = "x_to_move"
	StateOToMove State = "o_to_move"
	StateXWins   State = "x_wins"
	StateOWins   State = "o_wins"
	StateDraw    State = "draw"
)

func (that State) String() string {
	return string(that)
}

// IsTerminal - no outgoing transitions except a reset.
func (that State) IsTerminal() bool {
	switch that {
	case StateXWins, StateOWins, StateDraw:
		return true
	default:
		return false
	}
}

func turnOf(player Mark) State {
	if player == PlayerO {
		return StateOToMove
	}

	return StateXToMove
}

// WinCombos - 3 rows, 3 columns, 2 diagonals.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game - board and state of a single game. The zero value is not ready for use, create it with NewGame.
type Game struct {
	ID    string
	board [BoardSize]Mark
	state State
	moves int
}

func NewGame(id string) *Game {
	game := &Game{ID: id}
	game.Reset()

	return game
}

// Reset - empties the board and gives the first move to X.
func (that *Game) Reset() {
	that.board = [BoardSize]Mark{}
	that.state = StateXToMove
	that.moves = 0
}

func (that *Game) Board() [BoardSize]Mark {
	return that.board
}

func (that *Game) State() State {
	return that.state
}

func (that *Game) Moves() int {
	return that.moves
}

func (that *Game) IsTerminal() bool {
	return that.state.IsTerminal()
}

// IsLegalMove - cell is on the board and empty. Terminal state is checked by MakeTurn.
func (that *Game) IsLegalMove(cell int) bool {
	return cell >= 0 && cell < BoardSize && that.board[cell] == EmptyCell
}

// CurrentPlayer - the mark to move, or ErrGameFinished when nobody moves anymore.
func (that *Game) CurrentPlayer() (Mark, error) {
	switch that.state {
	case StateXToMove:
		return PlayerX, nil
	case StateOToMove:
		return PlayerO, nil
	default:
		return EmptyCell, apperror.ErrGameFinished
	}
}

// Winner - the winning mark, EmptyCell while the game goes on or after a draw.
func (that *Game) Winner() Mark {
	switch that.state {
	case StateXWins:
		return PlayerX
	case StateOWins:
		return PlayerO
	default:
		return EmptyCell
	}
}

// MakeTurn - places the current player's mark on cell.
// A rejected move returns *apperror.MoveError and leaves the game untouched.
func (that *Game) MakeTurn(cell int) error {
	player, err := that.CurrentPlayer()
	if err != nil {
		return &apperror.MoveError{Cell: cell, Err: err}
	}

	if cell < 0 || cell >= BoardSize {
		return &apperror.MoveError{Cell: cell, Err: apperror.ErrInvalidCell}
	}

	if that.board[cell] != EmptyCell {
		return &apperror.MoveError{Cell: cell, Err: apperror.ErrCellOccupied}
	}

	that.board[cell] = player
	that.moves++

	that.state = turnOf(player.Opponent())

	that.UpdateGameState()

	return nil
}

// DetermineGameResult - the winning mark, or EmptyCell with draw set when the board is full.
func (that *Game) DetermineGameResult() (winner Mark, draw bool) {
	if _, mark, ok := that.completedLine(); ok {
		return mark, false
	}

	// the game will continue until all the squares are full
	for _, cell := range that.board {
		if cell == EmptyCell {
			return EmptyCell, false
		}
	}

	return EmptyCell, true
}

// UpdateGameState - promotes the state to a terminal one when the last move decided the game.
func (that *Game) UpdateGameState() {
	switch winner, draw := that.DetermineGameResult(); {
	case winner == PlayerX:
		that.state = StateXWins
	case winner == PlayerO:
		that.state = StateOWins
	case draw:
		that.state = StateDraw
	}
}

// WinningLine - the completed line of a won game.
func (that *Game) WinningLine() ([3]int, bool) {
	if that.Winner() == EmptyCell {
		return [3]int{}, false
	}

	line, _, ok := that.completedLine()

	return line, ok
}

func (that *Game) completedLine() ([3]int, Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.board[combo[0]], that.board[combo[1]], that.board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return combo, a, true
		}
	}

	return [3]int{}, EmptyCell, false
}

// Snapshot - a copy that shares nothing with the original.
func (that *Game) Snapshot() *Game {
	snapshot := *that

	return &snapshot
}
