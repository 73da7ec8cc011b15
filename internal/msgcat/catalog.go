// Package msgcat holds user-facing text as text/template strings keyed by dotted paths.
package msgcat

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"text/template"

	yaml "gopkg.in/yaml.v3"
)

//go:embed messages.en.yaml
var defaultFiles embed.FS

var ErrUnknownKey = errors.New("message key not found")

// Catalog holds parsed templates from the embedded defaults plus optional overrides.
// Templates run with missingkey=error.
type Catalog struct {
	mu   sync.RWMutex
	tpls map[string]*template.Template
}

// New loads the embedded messages and then the *.yaml/*.yml files of overrideDir, if set.
func New(overrideDir string) (*Catalog, error) {
	var overrides fs.FS
	if dir := strings.TrimSpace(overrideDir); dir != "" {
		overrides = os.DirFS(dir)
	}
	return Load(overrides)
}

// Load is New over an arbitrary filesystem; nil means defaults only.
func Load(overrides fs.FS) (*Catalog, error) {
	c := &Catalog{tpls: make(map[string]*template.Template)}
	raw, err := fs.ReadFile(defaultFiles, "messages.en.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded messages: %w", err)
	}
	flat, err := flatten(raw)
	if err != nil {
		return nil, fmt.Errorf("embedded messages: %w", err)
	}
	if err := c.add(flat); err != nil {
		return nil, err
	}
	if overrides != nil {
		if err := c.applyOverrides(overrides); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) applyOverrides(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("read override dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		switch strings.ToLower(path.Ext(e.Name())) {
		case ".yaml", ".yml":
			if !e.IsDir() {
				names = append(names, e.Name())
			}
		}
	}
	sort.Strings(names)

	owner := make(map[string]string)
	for _, name := range names {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		flat, err := flatten(raw)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		for k := range flat {
			if prev, dup := owner[k]; dup {
				return fmt.Errorf("duplicate override key %q in %s and %s", k, prev, name)
			}
			owner[k] = name
		}
		if err := c.add(flat); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

func (c *Catalog) add(flat map[string]string) error {
	parsed := make(map[string]*template.Template, len(flat))
	for k, text := range flat {
		t, err := template.New(k).Option("missingkey=error").Parse(text)
		if err != nil {
			return fmt.Errorf("template %s: %w", k, err)
		}
		parsed[k] = t
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, t := range parsed {
		c.tpls[k] = t
	}
	return nil
}

// flatten turns nested YAML mappings into dotted keys. Leaves must be strings.
func flatten(raw []byte) (map[string]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	if len(doc.Content) == 0 {
		return out, nil
	}
	if err := walk(doc.Content[0], "", out); err != nil {
		return nil, err
	}
	return out, nil
}

func walk(n *yaml.Node, prefix string, out map[string]string) error {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if prefix != "" {
				key = prefix + "." + key
			}
			if err := walk(n.Content[i+1], key, out); err != nil {
				return err
			}
		}
		return nil
	case yaml.ScalarNode:
		if prefix == "" {
			return errors.New("top-level value must be a mapping")
		}
		if n.ShortTag() == "!!null" {
			return nil
		}
		if n.ShortTag() != "!!str" {
			return fmt.Errorf("line %d: %s must be a string, got %s", n.Line, prefix, n.ShortTag())
		}
		out[prefix] = n.Value
		return nil
	default:
		return fmt.Errorf("line %d: unsupported value at %q", n.Line, prefix)
	}
}

// Render executes the template stored under key.
func (c *Catalog) Render(key string, data any) (string, error) {
	c.mu.RLock()
	t, ok := c.tpls[strings.TrimSpace(key)]
	c.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Text renders key and falls back to fallback when the key is missing or fails to render.
func (c *Catalog) Text(key string, data any, fallback string) string {
	if c == nil {
		return fallback
	}
	out, err := c.Render(key, data)
	if err != nil {
		return fallback
	}
	return out
}

// Keys lists the loaded keys in order.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	keys := make([]string, 0, len(c.tpls))
	for k := range c.tpls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
