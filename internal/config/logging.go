package config

import (
	"fmt"
	"io"
	"log/slog"
)

// ParseLogLevel converts a level name into a slog level
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", level)
	}
}

// NewLogger creates a text logger writing to w at the given level.
// The MCP transport owns stdout, so callers pass stderr.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	slogLevel, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel})), nil
}
