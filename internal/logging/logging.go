// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ParseLevel maps debug, info, warn/warning and error to a slog level.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// New builds a text logger writing to w at level
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Setup installs the default logger. With a file path, logs are appended
// to that file; the returned closer closes it. An empty path discards
// logs, used by the terminal UI which owns stdout.
func Setup(level, file string) (io.Closer, error) {
	if file == "" {
		slog.SetDefault(New(io.Discard, level))
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	slog.SetDefault(New(f, level))
	return f, nil
}

// SetupStderr installs a default logger writing to stderr, used by the
// listing server
func SetupStderr(level string) {
	slog.SetDefault(New(os.Stderr, level))
}
