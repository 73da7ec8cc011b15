// Package session keeps boards between moves for the interactive front end. Each session is one
// board identified by a UUID; moves go through rules.Executor so a rejected move never reaches storage.
package session

import (
	"time"

	"github.com/park285/cheese-chessboard/internal/board"
)

// Status represents a session lifecycle state.
type Status string

const (
	StatusActive Status = "ACTIVE"
	StatusClosed Status = "CLOSED"
)

// MoveRecord describes the most recent applied move in square names.
type MoveRecord struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Piece string `json:"piece"`
}

// Game is the persisted state of one board.
type Game struct {
	ID        string      `json:"id"`
	Layout    []string    `json:"layout"`
	MoveCount int         `json:"move_count"`
	LastMove  *MoveRecord `json:"last_move,omitempty"`
	Status    Status      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	ClosedAt  *time.Time  `json:"closed_at,omitempty"`
}

// Board decodes the stored layout.
func (g *Game) Board() (*board.Board, error) { return DecodeLayout(g.Layout) }

func (g *Game) clone() *Game {
	c := *g
	c.Layout = append([]string(nil), g.Layout...)
	if g.LastMove != nil {
		lm := *g.LastMove
		c.LastMove = &lm
	}
	if g.ClosedAt != nil {
		t := *g.ClosedAt
		c.ClosedAt = &t
	}
	return &c
}

// Errors
var (
	ErrNotFound      = errf("session not found or expired")
	ErrExists        = errf("session already exists")
	ErrConflict      = errf("session modified concurrently")
	ErrSessionClosed = errf("session is closed")
	ErrBadLayout     = errf("invalid board layout")
)

type staticErr string

func (e staticErr) Error() string { return string(e) }
func errf(s string) error         { return staticErr(s) }
