// Package logging builds the structured loggers used by the CLI.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a logger writing to w. An unknown level falls back to info and
// an unknown format to text; both are reported through the new logger.
func New(w io.Writer, level, format string) *slog.Logger {
	lvl, levelOK := ParseLevel(level)
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	formatOK := true
	switch strings.ToLower(format) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case FormatText, "":
		handler = slog.NewTextHandler(w, opts)
	default:
		formatOK = false
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if !levelOK {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "info")
	}
	if !formatOK {
		logger.Warn("invalid log format configured, using text",
			"configured_format", format)
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
