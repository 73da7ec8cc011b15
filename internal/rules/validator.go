// Package rules decides whether a single move is legal on a board and applies it.
//
// Only movement geometry is checked: there is no notion of check, turn order,
// castling, en passant or promotion.
package rules

import (
	"fmt"

	"github.com/park285/cheese-chessboard/internal/board"
)

// Option configures a Validator.
type Option func(*Validator)

// WithSelfCaptureForbidden rejects non-pawn moves onto a square held by the mover's own side.
// Without it only pawns look at the destination's color, so a knight, bishop, rook, queen or
// king may land on (and displace) a friendly piece.
func WithSelfCaptureForbidden() Option {
	return func(v *Validator) { v.forbidSelfCapture = true }
}

// Validator holds rule toggles only; it keeps no reference to any board.
type Validator struct {
	forbidSelfCapture bool
}

func NewValidator(opts ...Option) *Validator {
	v := &Validator{}
	for _, opt := range opts {
		if opt != nil {
			opt(v)
		}
	}
	return v
}

// SelfCaptureForbidden reports whether the own-color destination check is enabled.
func (v *Validator) SelfCaptureForbidden() bool { return v != nil && v.forbidSelfCapture }

// Validate checks m against b without modifying it.
//
// A move whose source equals its destination is illegal for every kind. That includes rook, bishop
// and queen, whose line rules alone would accept the zero-length path; applying such a move would
// copy the piece onto itself and then empty the square.
func (v *Validator) Validate(b *board.Board, m board.Move) error {
	if !m.From.InBounds() {
		return fmt.Errorf("%w: source (%d,%d)", ErrOutOfBounds, m.From.Row, m.From.Col)
	}
	if !m.To.InBounds() {
		return fmt.Errorf("%w: destination (%d,%d)", ErrOutOfBounds, m.To.Row, m.To.Col)
	}
	piece, ok := cellAt(b, m.From).Piece()
	if !ok {
		return fmt.Errorf("%w: (%d,%d)", ErrNoPieceAtSource, m.From.Row, m.From.Col)
	}
	if !v.legal(b, piece, m) {
		return fmt.Errorf("%w: %s (%d,%d)->(%d,%d)", ErrInvalidPieceMove, piece, m.From.Row, m.From.Col, m.To.Row, m.To.Col)
	}
	return nil
}

func (v *Validator) legal(b *board.Board, piece board.Piece, m board.Move) bool {
	// a move must leave its square
	if m.From == m.To {
		return false
	}
	var ok bool
	switch piece.Kind {
	case board.Pawn:
		ok = pawnMove(b, piece.Color, m)
	case board.Knight:
		ok = knightMove(m)
	case board.Bishop:
		ok = diagonalMove(b, m)
	case board.Rook:
		ok = straightMove(b, m)
	case board.Queen:
		ok = straightMove(b, m) || diagonalMove(b, m)
	case board.King:
		ok = kingMove(m)
	}
	if !ok {
		return false
	}
	if v.SelfCaptureForbidden() && piece.Kind != board.Pawn && cellAt(b, m.To).HoldsColor(piece.Color) {
		return false
	}
	return true
}

func pawnMove(b *board.Board, color board.Color, m board.Move) bool {
	forward, home := -1, 6
	if color == board.Black {
		forward, home = 1, 1
	}
	rowDiff, colDiff := diffs(m)
	dst := cellAt(b, m.To)

	switch {
	case colDiff == 0 && rowDiff == forward:
		return dst.IsEmpty()
	case colDiff == 0 && rowDiff == 2*forward:
		between := board.Position{Row: m.From.Row + forward, Col: m.From.Col}
		return m.From.Row == home && dst.IsEmpty() && cellAt(b, between).IsEmpty()
	case abs(colDiff) == 1 && rowDiff == forward:
		return dst.HoldsColor(color.Opposite())
	}
	return false
}

func knightMove(m board.Move) bool {
	r, c := diffs(m)
	r, c = abs(r), abs(c)
	return (r == 2 && c == 1) || (r == 1 && c == 2)
}

func kingMove(m board.Move) bool {
	r, c := diffs(m)
	return max(abs(r), abs(c)) == 1
}

func diffs(m board.Move) (rowDiff, colDiff int) {
	return m.To.Row - m.From.Row, m.To.Col - m.From.Col
}

// cellAt reads a position already known to be in bounds.
func cellAt(b *board.Board, pos board.Position) board.Cell {
	c, _ := b.Get(pos)
	return c
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}
