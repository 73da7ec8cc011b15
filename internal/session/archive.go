package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// Archiver records closed sessions somewhere durable.
type Archiver interface {
	SaveSession(ctx context.Context, g *Game) error
}

// Archive stores closed sessions in Postgres.
type Archive struct {
	db *sql.DB
}

const archiveSchema = `CREATE TABLE IF NOT EXISTS board_sessions (
    session_id  TEXT PRIMARY KEY,
    layout      JSONB NOT NULL,
    move_count  INTEGER NOT NULL,
    last_move   TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL,
    started_at  TIMESTAMPTZ NOT NULL,
    closed_at   TIMESTAMPTZ NOT NULL
)`

func OpenArchive(databaseURL string) (*Archive, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	a := NewArchive(db)
	if err := a.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func NewArchive(db *sql.DB) *Archive { return &Archive{db: db} }

func (a *Archive) EnsureSchema(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, archiveSchema); err != nil {
		return fmt.Errorf("create board_sessions: %w", err)
	}
	return nil
}

func (a *Archive) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

// SaveSession upserts g keyed by its session id.
func (a *Archive) SaveSession(ctx context.Context, g *Game) error {
	if a == nil || a.db == nil || g == nil {
		return nil
	}
	layout, err := json.Marshal(g.Layout)
	if err != nil {
		return fmt.Errorf("marshal layout: %w", err)
	}
	closedAt := g.UpdatedAt
	if g.ClosedAt != nil {
		closedAt = *g.ClosedAt
	}

	const q = `INSERT INTO board_sessions (
        session_id, layout, move_count, last_move, status, started_at, closed_at
      ) VALUES ($1, $2::jsonb, $3, $4, $5, $6, $7)
      ON CONFLICT (session_id) DO UPDATE SET
        layout=EXCLUDED.layout,
        move_count=EXCLUDED.move_count,
        last_move=EXCLUDED.last_move,
        status=EXCLUDED.status,
        closed_at=EXCLUDED.closed_at`

	_, err = a.db.ExecContext(ctx, q,
		g.ID, string(layout), g.MoveCount, lastMoveText(g.LastMove), string(g.Status), g.CreatedAt, closedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert board session: %w", err)
	}
	return nil
}

func lastMoveText(m *MoveRecord) string {
	if m == nil {
		return ""
	}
	return m.From + m.To
}
