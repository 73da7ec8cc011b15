package session

import (
	"fmt"

	"github.com/park285/cheese-chessboard/internal/board"
	"github.com/park285/cheese-chessboard/internal/render"
)

var pieceBySymbol = func() map[byte]board.Piece {
	m := make(map[byte]board.Piece, 12)
	for _, color := range []board.Color{board.White, board.Black} {
		for kind := board.Pawn; kind <= board.King; kind++ {
			p := board.Piece{Kind: kind, Color: color}
			m[p.Symbol()] = p
		}
	}
	return m
}()

// EncodeLayout writes one string per row, row 0 first, using the text renderer's symbols.
func EncodeLayout(b *board.Board) []string {
	grid := b.Snapshot()
	rows := make([]string, board.Size)
	for r := 0; r < board.Size; r++ {
		buf := make([]byte, board.Size)
		for c := 0; c < board.Size; c++ {
			buf[c] = render.CellSymbol(grid[r][c])
		}
		rows[r] = string(buf)
	}
	return rows
}

// DecodeLayout is the inverse of EncodeLayout.
func DecodeLayout(rows []string) (*board.Board, error) {
	if len(rows) != board.Size {
		return nil, fmt.Errorf("%w: %d rows", ErrBadLayout, len(rows))
	}
	b := board.New()
	for r, row := range rows {
		if len(row) != board.Size {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBadLayout, r, len(row))
		}
		for c := 0; c < board.Size; c++ {
			ch := row[c]
			if ch == '.' {
				continue
			}
			p, ok := pieceBySymbol[ch]
			if !ok {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadLayout, ch, r, c)
			}
			if err := b.Set(board.Position{Row: r, Col: c}, board.Occupied(p)); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
