// Package logging builds the process logger: colored text through tint for
// terminals, JSON for collectors, optionally mirrored into a size-capped file.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the logger output.
type Options struct {
	Level  string
	Format string
	// File, when set, receives the log instead of the console.
	File string
	// Stderr sends console output to stderr, keeping stdout free for a
	// stdio protocol.
	Stderr bool
}

// New creates a logger. The returned closer releases the log file, if any.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	var out io.Writer = os.Stdout
	if opts.Stderr {
		out = os.Stderr
	}
	var closer io.Closer = nopCloser{}
	colored := true

	if opts.File != "" {
		w, err := NewFileWriter(opts.File)
		if err != nil {
			return nil, nil, err
		}
		out, closer, colored = w, w, false
	}

	level := ParseLevel(opts.Level)
	var handler slog.Handler
	if opts.Format == "json" {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(out, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !colored,
		})
	}
	return slog.New(handler), closer, nil
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
