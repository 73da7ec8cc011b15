package board

import "errors"

// ErrOutOfBounds is returned when a row or column falls outside 0–7.
var ErrOutOfBounds = errors.New("position out of bounds")
