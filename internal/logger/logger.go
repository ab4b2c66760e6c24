// Package logger builds the process logger. Output goes to a caller-chosen
// writer (stderr in the CLI) so it never mixes with exercise results on
// stdout.
package logger

import (
	"io"
	"log/slog"
	"time"
)

// Config selects the handler and level.
type Config struct {
	Debug bool
	JSON  bool
}

// New returns a logger writing to w. Debug lowers the level to debug and
// adds source locations.
func New(w io.Writer, cfg Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.Debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	}

	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
