package obslog

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"WARNING": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
		"bogus":   zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInitFromEnvWritesFile(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })

	path := filepath.Join(t.TempDir(), "nested", "chess.log")
	t.Setenv("LOG_TO_CONSOLE", "false")
	t.Setenv("LOG_TO_FILE", "true")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_FORMAT", "json")

	if err := InitFromEnv(); err != nil {
		t.Fatalf("InitFromEnv: %v", err)
	}
	L().Info("obslog_test", zap.String("k", "v"))
	_ = L().Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("expected log output in %s", path)
	}
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	prev := L()
	t.Cleanup(func() { SetLogger(prev) })
	SetLogger(nil)
	if L() == nil {
		t.Fatalf("L() returned nil")
	}
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_TO_CONSOLE", "0")
	t.Setenv("LOG_TO_FILE", "true")
	t.Setenv("LOG_FILE", "")
	t.Setenv("LOG_CALLER", "yes")

	o := OptionsFromEnv()
	if o.Level != zapcore.DebugLevel || o.Format != "json" || o.Console {
		t.Fatalf("unexpected options: %+v", o)
	}
	if o.File != filepath.Join("logs", "chessboard.log") {
		t.Fatalf("default file=%q", o.File)
	}
	if o.Caller {
		t.Fatalf("unparseable LOG_CALLER should keep default false")
	}

	t.Setenv("LOG_TO_FILE", "false")
	t.Setenv("LOG_FORMAT", "fancy")
	o = OptionsFromEnv()
	if o.File != "" || o.Format != "legacy" {
		t.Fatalf("unexpected options: %+v", o)
	}
}
