package msgcat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

func TestEmbeddedMessages(t *testing.T) {
	c, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.Render("move.invalid", map[string]any{"Piece": "ROOK"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got != "Invalid move for ROOK!" {
		t.Fatalf("Render = %q", got)
	}
	if _, err := c.Render("move.invalid", map[string]any{}); err == nil {
		t.Fatalf("expected missing key error")
	}
	if _, err := c.Render("no.such.key", nil); err == nil {
		t.Fatalf("expected template not found")
	}
	if got := c.Text("no.such.key", nil, "fallback"); got != "fallback" {
		t.Fatalf("Text fallback = %q", got)
	}
}

func TestOverrideDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("cli:\n  welcome: \"Hello {{.Name}}\"\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := c.Render("cli.welcome", map[string]any{"Name": "kim"})
	if err != nil || got != "Hello kim" {
		t.Fatalf("Render = %q, %v", got, err)
	}
	if !strings.HasPrefix(c.Text("cli.goodbye", nil, ""), "Exiting") {
		t.Fatalf("embedded key lost after override")
	}
}

func TestOverrideDuplicateKeys(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.yaml", "b.yml"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("cli:\n  goodbye: \"bye\"\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if _, err := New(dir); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestFlattenLeaves(t *testing.T) {
	if _, err := flatten([]byte("cli:\n  count: 3\n")); err == nil {
		t.Fatalf("expected error for integer leaf")
	}
	if _, err := flatten([]byte("cli:\n  - a\n")); err == nil {
		t.Fatalf("expected error for sequence")
	}
	flat, err := flatten([]byte("a:\n  b:\n    c: \"x\"\n  d: ~\n"))
	if err != nil {
		t.Fatalf("flatten: %v", err)
	}
	if len(flat) != 1 || flat["a.b.c"] != "x" {
		t.Fatalf("flat=%v", flat)
	}
}

func TestLoadFromFS(t *testing.T) {
	c, err := Load(fstest.MapFS{
		"ko.yaml":   {Data: []byte("cli:\n  goodbye: \"안녕히 가세요\"\n")},
		"notes.txt": {Data: []byte("ignored")},
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Text("cli.goodbye", nil, ""); got != "안녕히 가세요" {
		t.Fatalf("goodbye=%q", got)
	}
	if _, err := c.Render("missing", nil); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("err=%v, want ErrUnknownKey", err)
	}
	if _, err := Load(fstest.MapFS{"bad.yaml": {Data: []byte("cli:\n  welcome: \"{{.Broken\"\n")}}); err == nil {
		t.Fatalf("expected template parse error")
	}
	keys := c.Keys()
	if len(keys) == 0 || keys[0] > keys[len(keys)-1] {
		t.Fatalf("keys not sorted: %v", keys)
	}
}
