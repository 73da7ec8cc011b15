package board

// Color identifies a side.
type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

// PieceKind is the movement class of a piece.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "unknown"
	}
}

// Letter returns the upper-case single letter used by text layouts (P N B R Q K).
func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return '?'
	}
}

// Piece is a kind owned by a side.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// Symbol returns the piece letter, upper-case for White and lower-case for Black.
func (p Piece) Symbol() byte {
	l := p.Kind.Letter()
	if p.Color == Black {
		return l + ('a' - 'A')
	}
	return l
}

func (p Piece) String() string { return p.Color.String() + " " + p.Kind.String() }

// Cell is either empty or occupied by exactly one piece. The zero value is empty.
type Cell struct {
	piece    Piece
	occupied bool
}

// Empty returns an unoccupied cell.
func Empty() Cell { return Cell{} }

// Occupied returns a cell holding p.
func Occupied(p Piece) Cell { return Cell{piece: p, occupied: true} }

func (c Cell) IsEmpty() bool { return !c.occupied }

// Piece returns the occupant and true, or the zero Piece and false for an empty cell.
func (c Cell) Piece() (Piece, bool) {
	if !c.occupied {
		return Piece{}, false
	}
	return c.piece, true
}

// HoldsColor reports whether the cell is occupied by a piece of color.
func (c Cell) HoldsColor(color Color) bool {
	return c.occupied && c.piece.Color == color
}

// Position is a (row, column) pair. Row 0 is Black's back rank, row 7 White's; column 0 is file a.
type Position struct {
	Row int
	Col int
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Move is a source/destination pair.
type Move struct {
	From Position
	To   Position
}
