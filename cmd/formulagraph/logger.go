package main

import (
	"fmt"
	"io"
	"log/slog"
)

// newLogger creates a slog.Logger writing to outW at the given level, as text
// or JSON. Unknown levels and formats are rejected.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", levelStr)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	switch formatStr {
	case "text":
		handler = slog.NewTextHandler(outW, handlerOpts)
	case "json":
		handler = slog.NewJSONHandler(outW, handlerOpts)
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be text or json)", formatStr)
	}

	return slog.New(handler), nil
}
