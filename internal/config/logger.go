package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates a JSON logger writing to w at the given level.
//
// The server writes protocol traffic to stdout, so callers pass os.Stderr.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slogLevel,
	})
	return slog.New(handler)
}
