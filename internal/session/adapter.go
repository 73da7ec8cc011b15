package session

import (
	"context"
	"fmt"

	"github.com/park285/cheese-chessboard/internal/board"
	"github.com/park285/cheese-chessboard/internal/notation"
	"github.com/park285/cheese-chessboard/internal/render"
	"github.com/park285/cheese-chessboard/pkg/chessdto"
)

// ToDTO renders the board as text and PNG for presenter.Board.
func (m *Manager) ToDTO(ctx context.Context, g *Game) (*chessdto.SessionState, error) {
	if m == nil || g == nil {
		return nil, nil
	}
	b, err := g.Board()
	if err != nil {
		return nil, err
	}
	state := &chessdto.SessionState{
		SessionID: g.ID,
		Layout:    append([]string(nil), g.Layout...),
		BoardText: render.Text(b),
		MoveCount: g.MoveCount,
		Status:    string(g.Status),
	}
	if g.LastMove != nil {
		state.LastMove = g.LastMove.From + " " + g.LastMove.To
	}
	if m.renderer != nil {
		png, err := m.renderer.RenderPNG(ctx, b, render.RenderOptions{
			HUDHeader: hudHeader(g),
			Highlight: lastHighlight(g),
		})
		if err != nil {
			return nil, err
		}
		state.BoardImage = png
	}
	return state, nil
}

func hudHeader(g *Game) string {
	id := g.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("Session %s - move %d", id, g.MoveCount)
}

func lastHighlight(g *Game) *board.Move {
	if g.LastMove == nil {
		return nil
	}
	from, err := notation.ParseSquare(g.LastMove.From)
	if err != nil {
		return nil
	}
	to, err := notation.ParseSquare(g.LastMove.To)
	if err != nil {
		return nil
	}
	return &board.Move{From: from, To: to}
}
