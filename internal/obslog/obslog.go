// Package obslog 는 프로세스 전역 zap 로거를 관리한다.
// InitFromEnv 호출 전에는 L 이 no-op 로거를 반환하므로 라이브러리/테스트에서 그대로 로깅해도 된다.
package obslog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var current atomic.Pointer[zap.Logger]

func init() { current.Store(zap.NewNop()) }

// L는 전역 로거를 반환.
func L() *zap.Logger { return current.Load() }

// SetLogger는 전역 로거를 교체. nil이면 no-op 로거로 되돌린다.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	current.Store(l)
}

// Options는 LOG_* 환경변수에 대응.
type Options struct {
	Level   zapcore.Level
	Format  string // legacy, json or console
	Console bool
	File    string // empty disables file output
	Caller  bool
}

// OptionsFromEnv는 LOG_LEVEL, LOG_FORMAT, LOG_TO_CONSOLE, LOG_TO_FILE, LOG_FILE, LOG_CALLER 를 읽는다.
// stdout 은 대화형 CLI 가 쓰므로 콘솔 출력은 stderr, 파일 출력은 기본 꺼짐.
func OptionsFromEnv() Options {
	o := Options{
		Level:   parseLevel(os.Getenv("LOG_LEVEL")),
		Format:  parseFormat(os.Getenv("LOG_FORMAT")),
		Console: envBool("LOG_TO_CONSOLE", true),
		Caller:  envBool("LOG_CALLER", false),
	}
	if envBool("LOG_TO_FILE", false) {
		o.File = filepath.Join("logs", "chessboard.log")
		if v := strings.TrimSpace(os.Getenv("LOG_FILE")); v != "" {
			o.File = v
		}
	}
	return o
}

// InitFromEnv는 환경설정으로 zap 로거를 초기화.
func InitFromEnv() error {
	logger, err := New(OptionsFromEnv())
	if err != nil {
		return err
	}
	SetLogger(logger)
	return nil
}

// New는 stderr/파일 출력 로거를 만든다. 둘 다 꺼져 있으면 stderr 개발용 콘솔 인코더로 대체.
func New(o Options) (*zap.Logger, error) {
	var cores []zapcore.Core
	if o.Console {
		cores = append(cores, zapcore.NewCore(newEncoder(o.Format), zapcore.Lock(os.Stderr), o.Level))
	}
	if o.File != "" {
		if dir := filepath.Dir(o.File); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(o.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(newEncoder(o.Format), zapcore.AddSync(f), o.Level))
	}
	if len(cores) == 0 {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stderr), o.Level))
	}

	zopts := []zap.Option{zap.AddStacktrace(zapcore.ErrorLevel)}
	if o.Caller || o.Format == "legacy" {
		zopts = append(zopts, zap.AddCaller())
	}
	return zap.New(zapcore.NewTee(cores...), zopts...), nil
}

// 인코더 설정들
func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	switch format {
	case "json":
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	case "console":
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg)
	default:
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.ConsoleSeparator = " | "
		return zapcore.NewConsoleEncoder(cfg)
	}
}

func parseFormat(s string) string {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case "json", "console":
		return f
	default:
		return "legacy"
	}
}

// zap 레벨 이름 + "warning" 허용, 그 외는 info.
func parseLevel(s string) zapcore.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil || s == "" {
		return zapcore.InfoLevel
	}
	return lvl
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
