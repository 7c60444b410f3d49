// Package logging builds the process-wide *slog.Logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the handler and the minimum level.
type Config struct {
	Level  string    // debug, info, warn or error; anything else means info
	Format string    // "json" or "text"
	Output io.Writer // nil means os.Stderr
}

// New returns a logger writing to cfg.Output with the configured handler.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}

	return slog.New(h).With(slog.String("service", "lvroute"))
}

// ParseLevel maps a level name to its slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
