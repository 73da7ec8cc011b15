package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/park285/cheese-chessboard/internal/board"
	"github.com/park285/cheese-chessboard/internal/notation"
	"github.com/park285/cheese-chessboard/internal/obslog"
	"github.com/park285/cheese-chessboard/internal/render"
	"github.com/park285/cheese-chessboard/internal/rules"
)

type Manager struct {
	store    Store
	executor *rules.Executor
	renderer render.BoardRenderer
	archive  Archiver
	now      func() time.Time
}

type Option func(*Manager)

func WithExecutor(e *rules.Executor) Option {
	return func(m *Manager) {
		if e != nil {
			m.executor = e
		}
	}
}

func WithRenderer(r render.BoardRenderer) Option {
	return func(m *Manager) { m.renderer = r }
}

// WithArchive saves sessions to a when they are closed.
func WithArchive(a Archiver) Option {
	return func(m *Manager) { m.archive = a }
}

func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		executor: rules.NewExecutor(nil),
		renderer: render.NewPNGRenderer(),
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Start creates a session holding the standard starting layout.
func (m *Manager) Start(ctx context.Context) (*Game, error) {
	now := m.now()
	g := &Game{
		ID:        uuid.NewString(),
		Layout:    EncodeLayout(board.Initial()),
		Status:    StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := m.store.Create(ctx, g); err != nil {
		return nil, err
	}
	obslog.L().Info("session_create", zap.String("session_id", g.ID))
	return g, nil
}

func (m *Manager) Get(ctx context.Context, id string) (*Game, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return m.store.Load(ctx, id)
}

// Play validates and applies mv to the session board. Rule errors from package rules are
// returned unchanged (test them with errors.Is) and leave the stored board as it was.
func (m *Manager) Play(ctx context.Context, id string, mv board.Move) (*Game, error) {
	g, err := m.store.Update(ctx, id, func(g *Game) error {
		if g.Status != StatusActive {
			return ErrSessionClosed
		}
		b, err := g.Board()
		if err != nil {
			return err
		}
		if err := m.executor.Apply(b, mv); err != nil {
			return err
		}
		moved, _ := b.Get(mv.To)
		piece, _ := moved.Piece()
		g.Layout = EncodeLayout(b)
		g.MoveCount++
		g.LastMove = &MoveRecord{
			From:  notation.FormatSquare(mv.From),
			To:    notation.FormatSquare(mv.To),
			Piece: piece.String(),
		}
		g.UpdatedAt = m.now()
		return nil
	})
	if err != nil {
		fields := []zap.Field{
			zap.String("session_id", strings.TrimSpace(id)),
			zap.Int("from_row", mv.From.Row), zap.Int("from_col", mv.From.Col),
			zap.Int("to_row", mv.To.Row), zap.Int("to_col", mv.To.Col),
			zap.Error(err),
		}
		if isRuleError(err) {
			obslog.L().Debug("session_move_rejected", fields...)
		} else {
			obslog.L().Warn("session_move_error", fields...)
		}
		return nil, err
	}
	obslog.L().Info("session_move",
		zap.String("session_id", g.ID),
		zap.String("from", g.LastMove.From),
		zap.String("to", g.LastMove.To),
		zap.String("piece", g.LastMove.Piece),
		zap.Int("move_count", g.MoveCount),
	)
	return g, nil
}

// PlayNotation parses "e2 e4" style input and plays it.
func (m *Manager) PlayNotation(ctx context.Context, id, input string) (*Game, board.Move, error) {
	mv, err := notation.ParseMove(input)
	if err != nil {
		return nil, board.Move{}, err
	}
	g, err := m.Play(ctx, id, mv)
	return g, mv, err
}

// Close marks the session closed and hands it to the archive if one is attached.
// Closing an already closed session is a no-op apart from archiving again.
func (m *Manager) Close(ctx context.Context, id string) (*Game, error) {
	g, err := m.store.Update(ctx, id, func(g *Game) error {
		if g.Status == StatusClosed {
			return nil
		}
		now := m.now()
		g.Status = StatusClosed
		g.UpdatedAt = now
		g.ClosedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	obslog.L().Info("session_close", zap.String("session_id", g.ID), zap.Int("move_count", g.MoveCount))
	if m.archive != nil {
		if err := m.archive.SaveSession(ctx, g); err != nil {
			obslog.L().Error("session_archive_error", zap.String("session_id", g.ID), zap.Error(err))
			return g, fmt.Errorf("archive session: %w", err)
		}
		obslog.L().Info("session_archive", zap.String("session_id", g.ID))
	}
	return g, nil
}

func isRuleError(err error) bool {
	return errors.Is(err, rules.ErrInvalidPieceMove) ||
		errors.Is(err, rules.ErrNoPieceAtSource) ||
		errors.Is(err, rules.ErrOutOfBounds) ||
		errors.Is(err, ErrSessionClosed)
}
