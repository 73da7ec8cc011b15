package chessdto

// MoveSummary describes a single applied move.
type MoveSummary struct {
	State *SessionState
	Move  string
	Piece string
}
