package chesspresenter

import (
	"errors"
	"strings"

	"github.com/park285/cheese-chessboard/internal/notation"
)

func splitMove(s string) (string, string) {
	parts := strings.Fields(s)
	switch len(parts) {
	case 2:
		return parts[0], parts[1]
	case 1:
		if len(parts[0]) == 4 {
			return parts[0][:2], parts[0][2:]
		}
		return parts[0], ""
	default:
		return "", ""
	}
}

func isSquareError(err error) bool { return errors.Is(err, notation.ErrBadSquare) }
