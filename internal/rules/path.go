package rules

import "github.com/park285/cheese-chessboard/internal/board"

// straightMove accepts purely horizontal or vertical moves with a clear path.
func straightMove(b *board.Board, m board.Move) bool {
	if m.From.Row != m.To.Row && m.From.Col != m.To.Col {
		return false
	}
	return pathClear(b, m)
}

// diagonalMove accepts moves with |rowDiff| == |colDiff| and a clear path.
func diagonalMove(b *board.Board, m board.Move) bool {
	r, c := diffs(m)
	if abs(r) != abs(c) {
		return false
	}
	return pathClear(b, m)
}

// pathClear walks unit steps from source toward destination and reports whether every
// square strictly between them is empty. The destination itself is not inspected.
// m must lie on a rank, file or diagonal.
func pathClear(b *board.Board, m board.Move) bool {
	r, c := diffs(m)
	dr, dc := sign(r), sign(c)
	pos := board.Position{Row: m.From.Row + dr, Col: m.From.Col + dc}
	for pos != m.To {
		if !cellAt(b, pos).IsEmpty() {
			return false
		}
		pos.Row += dr
		pos.Col += dc
	}
	return true
}
