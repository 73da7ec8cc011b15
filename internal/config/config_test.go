package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"REDIS_URL", "DATABASE_URL", "CHESS_SESSION_TTL", "CHESS_FORBID_SELF_CAPTURE", "CHESS_SESSION_ID"} {
		t.Setenv(k, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionTTLSec != 86400 || cfg.ForbidSelfCapture || cfg.RedisURL != "" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REDIS_URL", " redis://localhost:6379/2 ")
	t.Setenv("CHESS_SESSION_TTL", "120")
	t.Setenv("CHESS_FORBID_SELF_CAPTURE", "true")
	t.Setenv("CHESS_BOARD_IMAGE_DIR", "/tmp/boards")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RedisURL != "redis://localhost:6379/2" {
		t.Fatalf("RedisURL = %q", cfg.RedisURL)
	}
	if cfg.SessionTTLSec != 120 || !cfg.ForbidSelfCapture || cfg.BoardImageDir != "/tmp/boards" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("CHESS_SESSION_TTL", "-5")
	t.Setenv("CHESS_FORBID_SELF_CAPTURE", "maybe")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionTTLSec != 86400 || cfg.ForbidSelfCapture {
		t.Fatalf("invalid values should keep defaults: %+v", cfg)
	}
}

func TestLoadRejectsRedisScheme(t *testing.T) {
	t.Setenv("REDIS_URL", "http://localhost:6379")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-redis scheme")
	}
}
