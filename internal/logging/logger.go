// Package logging provides structured logging helpers for the command.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with convenience methods
type Logger struct {
	*slog.Logger
}

// Config holds logging configuration
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // json, text
	Output io.Writer // defaults to os.Stderr
}

// NewLogger creates a new structured logger based on configuration
func NewLogger(cfg Config) *Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// ParseLevel maps a level name to a slog.Level, falling back to info.
func ParseLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithFields returns a new logger with additional fields
func (l *Logger) WithFields(fields ...any) *Logger {
	return &Logger{
		Logger: l.With(fields...),
	}
}
