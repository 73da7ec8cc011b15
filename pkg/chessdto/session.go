package chessdto

// SessionState is the presentation view of a stored board session.
type SessionState struct {
	SessionID  string
	Layout     []string
	BoardText  string
	BoardImage []byte
	MoveCount  int
	LastMove   string
	Status     string
}
