package chessdto

const (
	CodeOutOfBounds = "out_of_bounds"
	CodeNoPiece     = "no_piece"
	CodeInvalidMove = "invalid_move"
	CodeBadInput    = "bad_input"
	CodeConflict    = "conflict"
	CodeClosed      = "session_closed"
	CodeNotFound    = "not_found"
	CodeInternal    = "internal"
)

type DomainError struct {
	Code      string
	Message   string
	Retryable bool
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "chess board error"
}
