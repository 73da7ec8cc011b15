package rules

import "github.com/park285/cheese-chessboard/internal/board"

// Executor validates a move and, only if it is legal, commits it to the board.
type Executor struct {
	validator *Validator
}

// NewExecutor returns an Executor using v, or the default rule set when v is nil.
func NewExecutor(v *Validator) *Executor {
	if v == nil {
		v = defaultValidator
	}
	return &Executor{validator: v}
}

func (e *Executor) Validator() *Validator { return e.validator }

// Apply moves the source piece to the destination and empties the source.
// On any error the board is left exactly as it was.
func (e *Executor) Apply(b *board.Board, m board.Move) error {
	if err := e.validator.Validate(b, m); err != nil {
		return err
	}
	src := cellAt(b, m.From)
	if err := b.Set(m.To, src); err != nil {
		return err
	}
	return b.Set(m.From, board.Empty())
}

var (
	defaultValidator = NewValidator()
	defaultExecutor  = NewExecutor(defaultValidator)
)

// Validate checks m with the default rule set.
func Validate(b *board.Board, m board.Move) error { return defaultValidator.Validate(b, m) }

// Apply applies m with the default rule set.
func Apply(b *board.Board, m board.Move) error { return defaultExecutor.Apply(b, m) }
