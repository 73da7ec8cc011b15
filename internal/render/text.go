// Package render draws a board for people: a plain-text frame for terminals and a PNG image.
// It only reads cells through board.Board and never changes them.
package render

import (
	"strconv"
	"strings"

	"github.com/park285/cheese-chessboard/internal/board"
)

const filesHeader = "  a b c d e f g h"
const frameRule = "  ----------------"

// Text renders the board with White in upper case, Black in lower case and '.' for empty squares,
// rank numbers on both sides and file letters above and below.
func Text(b *board.Board) string {
	grid := b.Snapshot()
	var sb strings.Builder
	sb.WriteString(filesHeader + "\n")
	sb.WriteString(frameRule + "\n")
	for row := 0; row < board.Size; row++ {
		rank := strconv.Itoa(board.Size - row)
		sb.WriteString(rank + " |")
		for col := 0; col < board.Size; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(CellSymbol(grid[row][col]))
		}
		sb.WriteString(" | " + rank + "\n")
	}
	sb.WriteString(frameRule + "\n")
	sb.WriteString(filesHeader + "\n")
	return sb.String()
}

// CellSymbol returns the layout character of a cell.
func CellSymbol(c board.Cell) byte {
	p, ok := c.Piece()
	if !ok {
		return '.'
	}
	return p.Symbol()
}
