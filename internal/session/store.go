package session

import (
	"context"
	"strings"
	"sync"
)

// Store persists games. Update runs fn against the current state and saves the result only when
// fn returns nil; implementations may call fn more than once when they retry.
type Store interface {
	Create(ctx context.Context, g *Game) error
	Load(ctx context.Context, id string) (*Game, error)
	Update(ctx context.Context, id string, fn func(g *Game) error) (*Game, error)
	Close() error
}

// memstore is an in-process Store used when no Redis is configured.
type memstore struct {
	mu    sync.Mutex
	games map[string]*Game
}

func NewMemoryStore() Store {
	return &memstore{games: make(map[string]*Game)}
}

func (m *memstore) Create(ctx context.Context, g *Game) error {
	key := strings.TrimSpace(g.ID)
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.games[key]; exists {
		return ErrExists
	}
	m.games[key] = g.clone()
	return nil
}

func (m *memstore) Load(ctx context.Context, id string) (*Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrNotFound
	}
	return g.clone(), nil
}

func (m *memstore) Update(ctx context.Context, id string, fn func(g *Game) error) (*Game, error) {
	key := strings.TrimSpace(id)
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.games[key]
	if !ok {
		return nil, ErrNotFound
	}
	next := cur.clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	m.games[key] = next
	return next.clone(), nil
}

func (m *memstore) Close() error { return nil }
