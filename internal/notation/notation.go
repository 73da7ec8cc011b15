// Package notation converts coordinate text such as "e2" into board positions.
// Square names follow github.com/corentings/chess/v2 so text shown to users matches
// what the rest of the chess tooling prints.
package notation

import (
	"errors"
	"fmt"
	"strings"

	nchess "github.com/corentings/chess/v2"

	"github.com/park285/cheese-chessboard/internal/board"
)

var (
	ErrBadFormat = errors.New("invalid move format")
	ErrBadSquare = errors.New("invalid square")
)

var squaresByName = func() map[string]nchess.Square {
	m := make(map[string]nchess.Square, 64)
	for i := 0; i < 64; i++ {
		sq := nchess.Square(i)
		m[sq.String()] = sq
	}
	return m
}()

// SquareOf returns the chess square for an in-bounds position.
func SquareOf(pos board.Position) nchess.Square {
	return nchess.NewSquare(nchess.File(pos.Col), nchess.Rank(board.Size-1-pos.Row))
}

// PositionOf is the inverse of SquareOf.
func PositionOf(sq nchess.Square) board.Position {
	return board.Position{Row: board.Size - 1 - int(sq.Rank()), Col: int(sq.File())}
}

// FormatSquare renders pos as "e2"; out-of-range positions render as "??".
func FormatSquare(pos board.Position) string {
	if !pos.InBounds() {
		return "??"
	}
	return SquareOf(pos).String()
}

// FormatMove renders m as "e2 e4".
func FormatMove(m board.Move) string {
	return FormatSquare(m.From) + " " + FormatSquare(m.To)
}

// ParseSquare parses a file letter a-h followed by a rank digit 1-8, case-insensitive.
func ParseSquare(s string) (board.Position, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	sq, ok := squaresByName[name]
	if !ok {
		return board.Position{}, fmt.Errorf("%w: %q", ErrBadSquare, s)
	}
	return PositionOf(sq), nil
}

// ParseMove accepts "e2 e4" or the compact "e2e4".
func ParseMove(s string) (board.Move, error) {
	parts := strings.Fields(s)
	switch {
	case len(parts) == 2:
	case len(parts) == 1 && len(parts[0]) == 4:
		parts = []string{parts[0][:2], parts[0][2:]}
	default:
		return board.Move{}, fmt.Errorf("%w: %q", ErrBadFormat, strings.TrimSpace(s))
	}
	from, err := ParseSquare(parts[0])
	if err != nil {
		return board.Move{}, err
	}
	to, err := ParseSquare(parts[1])
	if err != nil {
		return board.Move{}, err
	}
	return board.Move{From: from, To: to}, nil
}
