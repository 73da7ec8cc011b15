package chessbuilder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/park285/cheese-chessboard/internal/adapter/chesspresenter"
	"github.com/park285/cheese-chessboard/internal/config"
	"github.com/park285/cheese-chessboard/internal/msgcat"
	"github.com/park285/cheese-chessboard/internal/render"
	"github.com/park285/cheese-chessboard/internal/rules"
	"github.com/park285/cheese-chessboard/internal/session"
)

type Deps struct {
	Manager   *session.Manager
	Store     session.Store
	Archive   *session.Archive
	Formatter *chesspresenter.Formatter
	Catalog   *msgcat.Catalog
}

// Close releases the store and archive connections.
func (d *Deps) Close() error {
	if d == nil {
		return nil
	}
	var errs []error
	if d.Store != nil {
		errs = append(errs, d.Store.Close())
	}
	if d.Archive != nil {
		errs = append(errs, d.Archive.Close())
	}
	return errors.Join(errs...)
}

func New(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (*Deps, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cat, err := msgcat.New(cfg.MessagesDir)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}

	// Store (Redis optional)
	var store session.Store
	ttl := time.Duration(cfg.SessionTTLSec) * time.Second
	if strings.TrimSpace(cfg.RedisURL) != "" {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		rs, err := session.OpenRedisStore(pingCtx, cfg.RedisURL, ttl)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("init redis store: %w", err)
		}
		store = rs
		logger.Info("session_store", zap.String("kind", "redis"), zap.Duration("ttl", ttl))
	} else {
		store = session.NewMemoryStore()
		logger.Info("session_store", zap.String("kind", "memory"))
	}

	deps := &Deps{Store: store, Catalog: cat, Formatter: chesspresenter.NewFormatter(cat)}

	// Archive (DB optional)
	opts := []session.Option{}
	if strings.TrimSpace(cfg.DatabaseURL) != "" {
		archive, err := session.OpenArchive(cfg.DatabaseURL)
		if err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("init archive: %w", err)
		}
		deps.Archive = archive
		opts = append(opts, session.WithArchive(archive))
		logger.Info("session_archive_enabled")
	}

	var vopts []rules.Option
	if cfg.ForbidSelfCapture {
		vopts = append(vopts, rules.WithSelfCaptureForbidden())
	}
	opts = append(opts, session.WithExecutor(rules.NewExecutor(rules.NewValidator(vopts...))))

	var ropts []render.Option
	if dir := strings.TrimSpace(cfg.PieceSetDir); dir != "" {
		ropts = append(ropts, render.WithPieceSet(os.DirFS(dir)))
	}
	opts = append(opts, session.WithRenderer(render.NewPNGRenderer(ropts...)))

	deps.Manager = session.NewManager(store, opts...)
	return deps, nil
}
