package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const defaultService = "soulmatch"

// Options tunes NewWithOptions. Empty fields fall back to LOG_LEVEL,
// LOG_FORMAT, stdout and the "soulmatch" service tag.
type Options struct {
	Writer  io.Writer
	Level   string
	Format  string // json or text
	Service string
}

// New constructs the JSON slog logger shared by every server component.
func New() *slog.Logger {
	return NewWithOptions(Options{})
}

// NewWithOptions builds a logger tagged with a service attribute.
func NewWithOptions(opts Options) *slog.Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	level := opts.Level
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	service := opts.Service
	if service == "" {
		service = defaultService
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(level)}
	var handler slog.Handler
	if strings.EqualFold(format, "text") {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}
	return slog.New(handler).With("service", service)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(level string) slog.Leveler {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
