package chessbuilder

import (
	"context"
	"errors"
	"fmt"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"github.com/park285/cheese-chessboard/internal/config"
	"github.com/park285/cheese-chessboard/internal/rules"
)

func TestNewMemoryStore(t *testing.T) {
	ctx := context.Background()
	deps, err := New(ctx, &config.AppConfig{SessionTTLSec: 60}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = deps.Close() })

	g, err := deps.Manager.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, _, err := deps.Manager.PlayNotation(ctx, g.ID, "e1 e2"); err != nil {
		t.Fatalf("king onto own pawn should be allowed by default: %v", err)
	}
}

func TestNewRedisWithSelfCaptureForbidden(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	ctx := context.Background()
	cfg := &config.AppConfig{
		RedisURL:          fmt.Sprintf("redis://%s/0", mr.Addr()),
		SessionTTLSec:     60,
		ForbidSelfCapture: true,
	}
	deps, err := New(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = deps.Close() })

	g, err := deps.Manager.Start(ctx)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if len(mr.Keys()) != 1 {
		t.Fatalf("expected session key in redis, got %v", mr.Keys())
	}
	if _, _, err := deps.Manager.PlayNotation(ctx, g.ID, "e1 e2"); !errors.Is(err, rules.ErrInvalidPieceMove) {
		t.Fatalf("err=%v, want ErrInvalidPieceMove", err)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(context.Background(), nil, nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := New(context.Background(), &config.AppConfig{RedisURL: "redis://127.0.0.1:1/0"}, nil); err == nil {
		t.Fatalf("expected error for unreachable redis")
	}
}
