package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// maxLineLength - longer lines are drained and reported as invalid input.
const maxLineLength = 1024

type line struct {
	text    string
	tooLong bool
	err     error
}

// LineSource - reads one move per line. The reader is consumed by a background goroutine
// so NextMove can give up when the context is done. The goroutine stops once ctx is done.
type LineSource struct {
	lines       <-chan line
	exitKeyword string
}

func NewLineSource(ctx context.Context, r io.Reader, exitKeyword string) *LineSource {
	lines := make(chan line)

	go func() {
		defer close(lines)

		reader := bufio.NewReaderSize(r, maxLineLength)
		for {
			next, err := readLine(reader)
			if errors.Is(err, io.EOF) {
				return
			}

			select {
			case lines <- next:
			case <-ctx.Done():
				return
			}

			if next.err != nil {
				return
			}
		}
	}()

	return &LineSource{
		lines:       lines,
		exitKeyword: exitKeyword,
	}
}

// readLine - the next line without its terminator. io.EOF only when nothing is left.
func readLine(reader *bufio.Reader) (line, error) {
	chunk, isPrefix, err := reader.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return line{}, err
		}

		return line{err: err}, nil
	}

	if !isPrefix {
		return line{text: string(chunk)}, nil
	}

	for isPrefix {
		_, isPrefix, err = reader.ReadLine()
		if err != nil {
			break
		}
	}

	return line{tooLong: true}, nil
}

func (that *LineSource) NextMove(ctx context.Context) (int, error) {
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return 0, io.EOF
		}

		if next.err != nil {
			return 0, fmt.Errorf("failed to read input: %w", next.err)
		}

		if next.tooLong {
			return 0, fmt.Errorf("%w: line longer than %d bytes", apperror.ErrInvalidInput, maxLineLength)
		}

		return ParseMove(next.text, that.exitKeyword)
	}
}

// ParseMove - turns a line into a cell index. Range is left to the game.
func ParseMove(text, exitKeyword string) (int, error) {
	text = strings.TrimSpace(text)

	if exitKeyword != "" && strings.EqualFold(text, exitKeyword) {
		return 0, apperror.ErrAborted
	}

	cell, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, text)
	}

	return cell, nil
}
