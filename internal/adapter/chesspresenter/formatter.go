package chesspresenter

import (
	"github.com/park285/cheese-chessboard/internal/msgcat"
	"github.com/park285/cheese-chessboard/pkg/chessdto"
)

// Formatter renders DTOs and errors into user-facing text from the message catalog.
// A nil catalog falls back to the built-in English strings.
type Formatter struct {
	cat *msgcat.Catalog
}

func NewFormatter(cat *msgcat.Catalog) *Formatter {
	return &Formatter{cat: cat}
}

func (f *Formatter) text(key string, data any, fallback string) string {
	if f == nil || f.cat == nil {
		return fallback
	}
	return f.cat.Text(key, data, fallback)
}

func (f *Formatter) Welcome() string { return f.text("cli.welcome", nil, "Welcome to Chess!") }

func (f *Formatter) Prompt() string {
	return f.text("cli.prompt", nil, "Enter your move (e.g., e2 e4, 'exit' to quit, 'close' to end the session): ")
}

func (f *Formatter) Goodbye() string { return f.text("cli.goodbye", nil, "Exiting the game. Goodbye!") }

func (f *Formatter) Retry() string { return f.text("cli.retry", nil, "Move failed. Try again.") }

func (f *Formatter) Resumed(id string) string {
	return f.text("cli.resumed", map[string]any{"ID": id}, "Resumed session "+id)
}

func (f *Formatter) Closed(id string) string {
	return f.text("cli.closed", map[string]any{"ID": id}, "Session "+id+" closed.")
}

func (f *Formatter) ImageSaved(path string) string {
	return f.text("cli.image_saved", map[string]any{"Path": path}, "Board image written to "+path)
}

func (f *Formatter) Session(state *chessdto.SessionState) string {
	if state == nil {
		return ""
	}
	return f.text("cli.session", map[string]any{"ID": state.SessionID, "State": state.Status},
		"Session "+state.SessionID+" ("+state.Status+")")
}

func (f *Formatter) Move(summary *chessdto.MoveSummary) string {
	if summary == nil || summary.State == nil {
		return ""
	}
	from, to := splitMove(summary.Move)
	return f.text("move.ok", map[string]any{"Piece": summary.Piece, "From": from, "To": to},
		summary.Piece+" "+from+" -> "+to)
}

// Error renders err for the player. piece names the moving piece when known.
func (f *Formatter) Error(err error, input, piece string) string {
	if err == nil {
		return ""
	}
	de := ErrorCode(err)
	switch de.Code {
	case chessdto.CodeBadInput:
		if input != "" && isSquareError(err) {
			return f.text("cli.bad_square", map[string]any{"Input": input}, "Unknown square in '"+input+"'.")
		}
		return f.text("cli.bad_format", nil, "Invalid input format. Use 'e2 e4' format.")
	case chessdto.CodeNoPiece:
		return f.text("move.no_piece", nil, "No piece at the starting position!")
	case chessdto.CodeInvalidMove:
		if piece == "" {
			piece = "piece"
		}
		return f.text("move.invalid", map[string]any{"Piece": piece}, "Invalid move for "+piece+"!")
	case chessdto.CodeOutOfBounds:
		return f.text("move.out_of_bounds", nil, "That square is off the board.")
	case chessdto.CodeConflict:
		return f.text("move.conflict", nil, "The session was changed elsewhere. Try again.")
	case chessdto.CodeClosed:
		return f.text("move.closed", nil, "This session is closed.")
	default:
		return f.text("move.error", map[string]any{"Error": de.Error()}, "Move failed: "+de.Error())
	}
}
