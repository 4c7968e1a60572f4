package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	colorX     = "#E06C75"
	colorO     = "#61AFEF"
	colorError = "#E5C07B"
	rowDivider = "|---|---|---|"
)

// Presenter - draws the board and status line on a terminal.
type Presenter struct {
	output      *termenv.Output
	exitKeyword string
}

// NewPresenter - colors are used only when color is set and out is a terminal that supports them.
func NewPresenter(out io.Writer, color bool, exitKeyword string) *Presenter {
	var opts []termenv.OutputOption
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Presenter{
		output:      termenv.NewOutput(out, opts...),
		exitKeyword: exitKeyword,
	}
}

func (that *Presenter) Render(game *entity.Game) {
	board := game.Board()
	line, won := game.WinningLine()

	var sb strings.Builder
	sb.WriteString("\n")

	for row := range 3 {
		if row > 0 {
			sb.WriteString(rowDivider + "\n")
		}

		sb.WriteString("|")
		for col := range 3 {
			cell := row*3 + col
			highlight := won && (cell == line[0] || cell == line[1] || cell == line[2])
			sb.WriteString(" " + that.mark(board[cell], highlight) + " |")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n" + StatusLine(game.State()) + "\n")

	fmt.Fprint(that.output, sb.String())
}

func (that *Presenter) Prompt(game *entity.Game) {
	player, err := game.CurrentPlayer()
	if err != nil {
		return
	}

	fmt.Fprintf(that.output, "Player %s, choose a cell 0-8 (%q to quit): ", player, that.exitKeyword)
}

func (that *Presenter) ShowError(err error) {
	message := that.output.String(ErrorMessage(err)).Foreground(that.output.Color(colorError))

	fmt.Fprintln(that.output, message.String())
}

func (that *Presenter) mark(mark entity.Mark, highlight bool) string {
	style := that.output.String(mark.String())

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.output.Color(colorX))
	case entity.PlayerO:
		style = style.Foreground(that.output.Color(colorO))
	}

	if highlight {
		style = style.Bold().Underline()
	}

	return style.String()
}

// StatusLine - human readable state.
func StatusLine(state entity.State) string {
	switch state {
	case entity.StateXToMove:
		return "Turn of player X"
	case entity.StateOToMove:
		return "Turn of player O"
	case entity.StateXWins:
		return "Player X wins"
	case entity.StateOWins:
		return "Player O wins"
	case entity.StateDraw:
		return "The game is a draw"
	default:
		return "Unknown state " + state.String()
	}
}

// ErrorMessage - explains a rejected input to the player.
func ErrorMessage(err error) string {
	cell := -1

	var moveErr *apperror.MoveError
	if errors.As(err, &moveErr) {
		cell = moveErr.Cell
	}

	switch {
	case errors.Is(err, apperror.ErrInvalidInput):
		return "Please enter a cell number from 0 to 8"
	case errors.Is(err, apperror.ErrInvalidCell):
		return fmt.Sprintf("Cell %d is off the board, choose 0 to 8", cell)
	case errors.Is(err, apperror.ErrCellOccupied):
		return fmt.Sprintf("Cell %d is already taken", cell)
	case errors.Is(err, apperror.ErrGameFinished):
		return "The game is over"
	default:
		return err.Error()
	}
}
