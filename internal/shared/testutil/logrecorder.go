// Package testutil provides shared test helpers.
package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// LogEntry is one captured log record.
type LogEntry struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// LogRecorder is a slog.Handler that captures records in memory so tests can
// assert on what was logged.
type LogRecorder struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogRecorder creates an empty recorder.
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{}
}

// Logger returns a logger that writes into the recorder.
func (r *LogRecorder) Logger() *slog.Logger {
	return slog.New(r)
}

// Handle implements slog.Handler.
func (r *LogRecorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]any)
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, LogEntry{
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   attrs,
	})
	return nil
}

// Enabled implements slog.Handler. Tests capture every level.
func (r *LogRecorder) Enabled(context.Context, slog.Level) bool { return true }

// WithAttrs implements slog.Handler.
func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }

// WithGroup implements slog.Handler.
func (r *LogRecorder) WithGroup(string) slog.Handler { return r }

// Entries returns a copy of the captured records.
func (r *LogRecorder) Entries() []LogEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]LogEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Contains reports whether any captured message contains the substring.
func (r *LogRecorder) Contains(message string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if strings.Contains(e.Message, message) {
			return true
		}
	}
	return false
}
