package chesspresenter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/park285/cheese-chessboard/internal/msgcat"
	"github.com/park285/cheese-chessboard/internal/notation"
	"github.com/park285/cheese-chessboard/internal/rules"
	"github.com/park285/cheese-chessboard/internal/session"
	"github.com/park285/cheese-chessboard/pkg/chessdto"
)

func TestPresenterBoardOrder(t *testing.T) {
	var sent []string
	var images int
	p := NewPresenter(
		func(msg string) error { sent = append(sent, msg); return nil },
		func(id string, png []byte) error {
			if id != "s1" || string(png) != "img" {
				t.Fatalf("unexpected image call: %s %q", id, png)
			}
			images++
			return nil
		},
	)
	state := &chessdto.SessionState{SessionID: "s1", BoardText: "board", BoardImage: []byte("img")}
	if err := p.Board("hello", state); err != nil {
		t.Fatalf("Board: %v", err)
	}
	if len(sent) != 2 || sent[0] != "hello" || sent[1] != "board" || images != 1 {
		t.Fatalf("sent=%v images=%d", sent, images)
	}
}

func TestPresenterBoardStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPresenter(func(string) error { return boom }, func(string, []byte) error {
		t.Fatalf("image must not be sent after message failure")
		return nil
	})
	if err := p.Board("x", &chessdto.SessionState{BoardImage: []byte("img")}); !errors.Is(err, boom) {
		t.Fatalf("err=%v, want boom", err)
	}
	var nilP *Presenter
	if err := nilP.Board("x", nil); err != nil {
		t.Fatalf("nil presenter: %v", err)
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		code string
	}{
		{fmt.Errorf("%w: row 9", rules.ErrOutOfBounds), chessdto.CodeOutOfBounds},
		{fmt.Errorf("%w: e4", rules.ErrNoPieceAtSource), chessdto.CodeNoPiece},
		{fmt.Errorf("%w: pawn", rules.ErrInvalidPieceMove), chessdto.CodeInvalidMove},
		{fmt.Errorf("%w: %q", notation.ErrBadFormat, "x"), chessdto.CodeBadInput},
		{fmt.Errorf("%w: %q", notation.ErrBadSquare, "z9"), chessdto.CodeBadInput},
		{session.ErrConflict, chessdto.CodeConflict},
		{session.ErrSessionClosed, chessdto.CodeClosed},
		{session.ErrNotFound, chessdto.CodeNotFound},
		{chessdto.DomainError{Code: "custom"}, "custom"},
		{errors.New("other"), chessdto.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ErrorCode(tt.err); got.Code != tt.code {
				t.Fatalf("ErrorCode(%v)=%q, want %q", tt.err, got.Code, tt.code)
			}
		})
	}
	if !ErrorCode(session.ErrConflict).Retryable {
		t.Fatalf("conflict should be retryable")
	}
	if got := ErrorCode(nil); got.Code != "" {
		t.Fatalf("ErrorCode(nil)=%+v", got)
	}
}

func TestFormatterMessages(t *testing.T) {
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	for name, f := range map[string]*Formatter{"catalog": NewFormatter(cat), "fallback": NewFormatter(nil)} {
		t.Run(name, func(t *testing.T) {
			if got := f.Welcome(); got != "Welcome to Chess!" {
				t.Fatalf("Welcome=%q", got)
			}
			if got := f.Error(fmt.Errorf("%w: %q", notation.ErrBadFormat, "e2"), "e2", ""); got != "Invalid input format. Use 'e2 e4' format." {
				t.Fatalf("bad format=%q", got)
			}
			if got := f.Error(fmt.Errorf("%w", rules.ErrInvalidPieceMove), "e2 e5", "pawn"); got != "Invalid move for pawn!" {
				t.Fatalf("invalid=%q", got)
			}
			if got := f.Error(rules.ErrNoPieceAtSource, "e4 e5", ""); got != "No piece at the starting position!" {
				t.Fatalf("no piece=%q", got)
			}
			if got := f.Move(&chessdto.MoveSummary{State: &chessdto.SessionState{}, Move: "e2 e4", Piece: "white pawn"}); got != "white pawn e2 -> e4" {
				t.Fatalf("move=%q", got)
			}
			if got := f.Session(&chessdto.SessionState{SessionID: "abc", Status: "ACTIVE"}); got != "Session abc (ACTIVE)" {
				t.Fatalf("session=%q", got)
			}
		})
	}
}

func TestFormatterBadSquare(t *testing.T) {
	f := NewFormatter(nil)
	_, err := notation.ParseMove("e9 e4")
	if got := f.Error(err, "e9 e4", ""); got != "Unknown square in 'e9 e4'." {
		t.Fatalf("bad square=%q", got)
	}
	if got := f.Error(errors.New("disk full"), "", ""); got != "Move failed: disk full" {
		t.Fatalf("generic=%q", got)
	}
}

func TestMoveRejected(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{fmt.Errorf("%w: e4", rules.ErrNoPieceAtSource), true},
		{fmt.Errorf("%w: pawn", rules.ErrInvalidPieceMove), true},
		{fmt.Errorf("%w: row 9", rules.ErrOutOfBounds), true},
		{fmt.Errorf("%w: %q", notation.ErrBadFormat, "x"), false},
		{session.ErrConflict, false},
		{session.ErrSessionClosed, false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := MoveRejected(tt.err); got != tt.want {
			t.Fatalf("MoveRejected(%v)=%v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestFormatterSessionLifecycle(t *testing.T) {
	cat, err := msgcat.New("")
	if err != nil {
		t.Fatalf("msgcat.New: %v", err)
	}
	for name, f := range map[string]*Formatter{"catalog": NewFormatter(cat), "fallback": NewFormatter(nil)} {
		t.Run(name, func(t *testing.T) {
			if got := f.Resumed("abc"); got != "Resumed session abc" {
				t.Fatalf("Resumed=%q", got)
			}
			if got := f.Closed("abc"); got != "Session abc closed." {
				t.Fatalf("Closed=%q", got)
			}
			if got := f.Retry(); got != "Move failed. Try again." {
				t.Fatalf("Retry=%q", got)
			}
		})
	}
}
