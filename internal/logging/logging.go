// Package logging builds the structured logger used by the growthcalc
// front ends and adapts it to the calculation engine's Logger interface.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls logger construction
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	// FilePath switches output from stderr to a size-rotated file
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// ParseLevel maps a level name to a slog.Level; unknown names become info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a logger per cfg. The returned closer releases the log file
// and is a no-op when logging to stderr.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	var (
		out    io.Writer = os.Stderr
		closer io.Closer = nopCloser{}
	)

	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		out, closer = rotating, rotating
	}

	return slog.New(NewHandler(out, cfg)), closer, nil
}

// NewHandler builds the text or JSON handler for w
func NewHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// CalcLogger adapts a *slog.Logger to calculation.Logger
type CalcLogger struct {
	L *slog.Logger
}

func (c CalcLogger) Debugf(format string, args ...any) { c.L.Debug(fmt.Sprintf(format, args...)) }
func (c CalcLogger) Infof(format string, args ...any)  { c.L.Info(fmt.Sprintf(format, args...)) }
func (c CalcLogger) Warnf(format string, args ...any)  { c.L.Warn(fmt.Sprintf(format, args...)) }
func (c CalcLogger) Errorf(format string, args ...any) { c.L.Error(fmt.Sprintf(format, args...)) }
