// Package logging configures the process-wide slog default. The batch log
// is a plain-text file in the output directory, one line per record:
//
//	[15:04:05] {featurizer.go:42} ERROR - could not load /data/mof.cif
//
// Init is called once at process start with the output directory; the file
// handle stays open for the life of the process.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Init opens (or creates) <dir>/log for appending and installs the batch
// handler as the slog default. Returns the file so the caller can close it
// on shutdown.
func Init(dir string, level slog.Level) (*os.File, error) {
	f, err := os.OpenFile(filepath.Join(dir, "log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	slog.SetDefault(slog.New(NewBatchHandler(f, level)))
	return f, nil
}

// InitWriter installs the batch handler over an arbitrary writer. Used by
// tests and by commands that log to stderr instead of a run directory.
func InitWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(NewBatchHandler(w, level)))
}

// New returns a logger with a "component" attribute for module-scoped logging.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to slog.Level.
// Unknown strings default to LevelInfo.
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
