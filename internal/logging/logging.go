// Package logging builds the structured loggers shared by every obsidex binary.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Component names used with ForComponent
const (
	CompIndexer = "indexer"
	CompScanner = "scanner"
	CompWatcher = "watcher"
	CompConfig  = "obsidian-config"
	CompMirror  = "sqlite-mirror"
	CompMCP     = "mcp"
	CompTUI     = "tui"
)

// ParseLevel maps debug, info, warn and error onto slog levels.
// An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New returns a text logger writing to w at the given level
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForComponent tags every record with the component name.
// A nil logger falls back to slog.Default().
func ForComponent(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(slog.String("component", component))
}
