package rules

import (
	"errors"

	"github.com/park285/cheese-chessboard/internal/board"
)

var (
	// ErrOutOfBounds is board.ErrOutOfBounds, re-exported so callers need only this package.
	ErrOutOfBounds      = board.ErrOutOfBounds
	ErrNoPieceAtSource  = errors.New("no piece at source")
	ErrInvalidPieceMove = errors.New("invalid piece move")
)
