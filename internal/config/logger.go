package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogger configures the global logger based on the configuration
func SetupLogger(level string) *slog.Logger {
	logger := newLogger(level, os.Stderr)
	slog.SetDefault(logger)
	return logger
}

// SetupFileLogger configures the global logger to write to a file instead of
// stderr. The TUI uses this so log output cannot corrupt the alternate
// screen. An empty path yields a logger that discards everything.
func SetupFileLogger(level, path string) (*slog.Logger, error) {
	if path == "" {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		slog.SetDefault(logger)
		return logger, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := newLogger(level, f)
	slog.SetDefault(logger)
	return logger, nil
}

func newLogger(level string, w io.Writer) *slog.Logger {
	logLevel := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: logLevel == slog.LevelDebug, // Add source file/line in debug mode
	}

	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
