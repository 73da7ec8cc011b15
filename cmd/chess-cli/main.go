package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/park285/cheese-chessboard/internal/adapter/chesspresenter"
	"github.com/park285/cheese-chessboard/internal/board"
	"github.com/park285/cheese-chessboard/internal/chessbuilder"
	appcfg "github.com/park285/cheese-chessboard/internal/config"
	"github.com/park285/cheese-chessboard/internal/obslog"
	"github.com/park285/cheese-chessboard/internal/session"
	"github.com/park285/cheese-chessboard/pkg/chessdto"
)

func main() {
	if err := obslog.InitFromEnv(); err != nil {
		log.Printf("logger init error: %v", err)
	}
	defer func() { _ = obslog.L().Sync() }()

	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := chessbuilder.New(ctx, cfg, obslog.L())
	if err != nil {
		log.Fatalf("chess init error: %v", err)
	}
	defer func() { _ = deps.Close() }()

	if err := run(ctx, os.Stdin, os.Stdout, deps, cfg); err != nil {
		obslog.L().Error("cli_exit", zap.Error(err))
		os.Exit(1)
	}
}

// run drives the prompt loop. "exit", EOF and ctx cancellation leave the session ACTIVE so it can be
// resumed through CHESS_SESSION_ID; "close" closes it and hands it to the archive.
func run(ctx context.Context, in io.Reader, out io.Writer, deps *chessbuilder.Deps, cfg *appcfg.AppConfig) error {
	mgr, f := deps.Manager, deps.Formatter
	say := func(msg string) error {
		_, err := fmt.Fprintln(out, msg)
		return err
	}
	imageDir := strings.TrimSpace(cfg.BoardImageDir)
	presenter := chesspresenter.NewPresenter(say, func(id string, png []byte) error {
		if imageDir == "" {
			return nil
		}
		path, err := writeSnapshot(imageDir, id, png)
		if err != nil {
			return err
		}
		return say(f.ImageSaved(path))
	})

	g, resumed, err := openSession(ctx, mgr, cfg.SessionID)
	if err != nil {
		return err
	}

	greeting := f.Welcome()
	if resumed {
		greeting += "\n" + f.Resumed(g.ID)
	}
	if err := show(ctx, mgr, presenter, greeting, g); err != nil {
		return err
	}
	if err := say(f.Session(&chessdto.SessionState{SessionID: g.ID, Status: string(g.Status)})); err != nil {
		return err
	}

	lines, readErr := readLines(ctx, in)
	for {
		if _, err := fmt.Fprint(out, f.Prompt()); err != nil {
			return err
		}
		var line string
		select {
		case <-ctx.Done():
			_ = say("")
			return say(f.Goodbye())
		case l, ok := <-lines:
			if !ok {
				_ = say("")
				_ = say(f.Goodbye())
				return <-readErr
			}
			line = strings.TrimSpace(l)
		}

		switch strings.ToLower(line) {
		case "exit":
			return say(f.Goodbye())
		case "close":
			closed, err := mgr.Close(ctx, g.ID)
			if err != nil && closed == nil {
				return err
			}
			if err != nil {
				obslog.L().Warn("session_close_error", zap.String("session_id", g.ID), zap.Error(err))
			}
			_ = say(f.Closed(g.ID))
			return say(f.Goodbye())
		}

		next, mv, err := mgr.PlayNotation(ctx, g.ID, line)
		if err != nil {
			if err := say(f.Error(err, line, pieceName(g, mv))); err != nil {
				return err
			}
			if errors.Is(err, session.ErrNotFound) {
				return err
			}
			if chesspresenter.MoveRejected(err) {
				if err := say(f.Retry()); err != nil {
					return err
				}
			}
			continue
		}
		g = next
		moved := f.Move(&chessdto.MoveSummary{
			State: &chessdto.SessionState{SessionID: g.ID},
			Move:  g.LastMove.From + " " + g.LastMove.To,
			Piece: g.LastMove.Piece,
		})
		if err := show(ctx, mgr, presenter, moved, g); err != nil {
			return err
		}
	}
}

// readLines feeds in line by line so the prompt loop can also wait on ctx. A read blocked on a
// terminal is abandoned when ctx ends; the process exits right after.
func readLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- nil
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}

// openSession resumes id when it names an ACTIVE session and starts a new one otherwise.
func openSession(ctx context.Context, mgr *session.Manager, id string) (*session.Game, bool, error) {
	if id = strings.TrimSpace(id); id != "" {
		g, err := mgr.Get(ctx, id)
		if err == nil && g.Status == session.StatusActive {
			obslog.L().Info("session_resume", zap.String("session_id", g.ID), zap.Int("move_count", g.MoveCount))
			return g, true, nil
		}
		if err != nil && !errors.Is(err, session.ErrNotFound) {
			return nil, false, err
		}
		obslog.L().Info("session_resume_skipped", zap.String("session_id", id))
	}
	g, err := mgr.Start(ctx)
	return g, false, err
}

func show(ctx context.Context, mgr *session.Manager, p *chesspresenter.Presenter, msg string, g *session.Game) error {
	state, err := mgr.ToDTO(ctx, g)
	if err != nil {
		return err
	}
	return p.Board(msg, state)
}

// pieceName reports the kind at the move's source in g, or "" when there is none.
func pieceName(g *session.Game, mv board.Move) string {
	b, err := g.Board()
	if err != nil {
		return ""
	}
	cell, err := b.Get(mv.From)
	if err != nil {
		return ""
	}
	p, ok := cell.Piece()
	if !ok {
		return ""
	}
	return p.Kind.String()
}

func writeSnapshot(dir, id string, png []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, id+".png")
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
