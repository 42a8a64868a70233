// Package logging configures the process-wide slog logger.
//
// CLI commands log human-readable text to stderr. The TUI owns the terminal,
// so it logs to a file (TASKDECK_LOG_FILE) or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	EnvLevel = "TASKDECK_LOG_LEVEL"
	EnvFile  = "TASKDECK_LOG_FILE"
)

// ParseLevel maps debug|info|warn|error (case-insensitive) to a slog level.
// Unknown values fall back to warn and report ok=false.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "", "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// New builds a text logger writing to w and makes it the slog default.
func New(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "warn")
	}
	slog.SetDefault(logger)
	return logger
}

// ForTUI returns a logger for interactive mode and a close func for the log file.
func ForTUI(level string) (*slog.Logger, func() error, error) {
	path := strings.TrimSpace(os.Getenv(EnvFile))
	if path == "" {
		return New(io.Discard, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f.Close, nil
}
