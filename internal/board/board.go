// Package board holds the 8x8 grid of cells. It has no knowledge of movement rules.
package board

import "fmt"

// Size is the number of rows and columns.
const Size = 8

var backRank = [Size]PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board is a fixed 8x8 grid. Copying a Board by value yields an independent snapshot.
type Board struct {
	cells [Size][Size]Cell
}

// New returns an empty board.
func New() *Board { return &Board{} }

// Initial returns the standard starting layout.
func Initial() *Board {
	b := &Board{}
	for col := 0; col < Size; col++ {
		b.cells[0][col] = Occupied(Piece{Kind: backRank[col], Color: Black})
		b.cells[1][col] = Occupied(Piece{Kind: Pawn, Color: Black})
		b.cells[6][col] = Occupied(Piece{Kind: Pawn, Color: White})
		b.cells[7][col] = Occupied(Piece{Kind: backRank[col], Color: White})
	}
	return b
}

func (b *Board) Get(pos Position) (Cell, error) {
	if !pos.InBounds() {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pos.Row, pos.Col)
	}
	return b.cells[pos.Row][pos.Col], nil
}

// Set overwrites the cell at pos without any legality check.
func (b *Board) Set(pos Position, cell Cell) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, pos.Row, pos.Col)
	}
	b.cells[pos.Row][pos.Col] = cell
	return nil
}

// Snapshot returns a copy of the grid for read-only consumers such as renderers.
func (b *Board) Snapshot() [Size][Size]Cell { return b.cells }

// Equal reports whether both boards hold the same cells.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.cells == other.cells
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}
