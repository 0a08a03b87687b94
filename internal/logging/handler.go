package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// BatchHandler is a slog.Handler emitting the plain-text batch-log format
// `[HH:MM:SS] {file:line} LEVEL - message key=value ...`.
type BatchHandler struct {
	mu    *sync.Mutex
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
}

// NewBatchHandler creates a BatchHandler writing to w at the given level.
func NewBatchHandler(w io.Writer, level slog.Level) *BatchHandler {
	return &BatchHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *BatchHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *BatchHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(r.Time.Format("15:04:05"))
	b.WriteString("] {")
	b.WriteString(sourceRef(r.PC))
	b.WriteString("} ")
	b.WriteString(r.Level.String())
	b.WriteString(" - ")
	b.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&b, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *BatchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

// WithGroup is accepted but groups are flattened; the batch format is a
// single line of key=value pairs.
func (h *BatchHandler) WithGroup(string) slog.Handler {
	return h
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value.Resolve().Any())
}

// sourceRef resolves a record's program counter to "file.go:line".
func sourceRef(pc uintptr) string {
	if pc == 0 {
		return "???:0"
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	frame, _ := frames.Next()
	if frame.File == "" {
		return "???:0"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
