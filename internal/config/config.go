package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type AppConfig struct {
	RedisURL    string
	DatabaseURL string

	SessionTTLSec     int
	SessionID         string
	ForbidSelfCapture bool
	MessagesDir       string
	BoardImageDir     string
	PieceSetDir       string
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		SessionTTLSec: 86400,
	}

	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	cfg.SessionID = strings.TrimSpace(os.Getenv("CHESS_SESSION_ID"))
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("CHESS_MESSAGES_DIR"))
	cfg.BoardImageDir = strings.TrimSpace(os.Getenv("CHESS_BOARD_IMAGE_DIR"))
	cfg.PieceSetDir = strings.TrimSpace(os.Getenv("CHESS_PIECE_SET_DIR"))

	if v := strings.TrimSpace(os.Getenv("CHESS_SESSION_TTL")); v != "" { // seconds
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionTTLSec = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("CHESS_FORBID_SELF_CAPTURE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			cfg.ForbidSelfCapture = b
		}
	}

	if cfg.RedisURL != "" {
		u, err := url.Parse(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("REDIS_URL: %w", err)
		}
		if u.Scheme != "redis" && u.Scheme != "rediss" {
			return nil, fmt.Errorf("REDIS_URL: unsupported scheme %q", u.Scheme)
		}
	}

	return cfg, nil
}
