package chesspresenter

import (
	"errors"

	"github.com/park285/cheese-chessboard/internal/notation"
	"github.com/park285/cheese-chessboard/internal/rules"
	"github.com/park285/cheese-chessboard/internal/session"
	"github.com/park285/cheese-chessboard/pkg/chessdto"
)

// ErrorCode maps board and session errors onto DomainError codes.
func ErrorCode(err error) chessdto.DomainError {
	var de chessdto.DomainError
	switch {
	case err == nil:
		return chessdto.DomainError{}
	case errors.As(err, &de):
		return de
	case errors.Is(err, rules.ErrOutOfBounds):
		return chessdto.DomainError{Code: chessdto.CodeOutOfBounds, Message: err.Error()}
	case errors.Is(err, rules.ErrNoPieceAtSource):
		return chessdto.DomainError{Code: chessdto.CodeNoPiece, Message: err.Error()}
	case errors.Is(err, rules.ErrInvalidPieceMove):
		return chessdto.DomainError{Code: chessdto.CodeInvalidMove, Message: err.Error()}
	case errors.Is(err, notation.ErrBadFormat), errors.Is(err, notation.ErrBadSquare):
		return chessdto.DomainError{Code: chessdto.CodeBadInput, Message: err.Error()}
	case errors.Is(err, session.ErrConflict):
		return chessdto.DomainError{Code: chessdto.CodeConflict, Message: err.Error(), Retryable: true}
	case errors.Is(err, session.ErrSessionClosed):
		return chessdto.DomainError{Code: chessdto.CodeClosed, Message: err.Error()}
	case errors.Is(err, session.ErrNotFound):
		return chessdto.DomainError{Code: chessdto.CodeNotFound, Message: err.Error()}
	default:
		return chessdto.DomainError{Code: chessdto.CodeInternal, Message: err.Error()}
	}
}

// MoveRejected reports whether err came from the board refusing a move, as opposed to bad input
// or a storage failure.
func MoveRejected(err error) bool {
	switch ErrorCode(err).Code {
	case chessdto.CodeOutOfBounds, chessdto.CodeNoPiece, chessdto.CodeInvalidMove:
		return true
	default:
		return false
	}
}
