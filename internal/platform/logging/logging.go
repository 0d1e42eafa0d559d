package logging

import (
	"io"
	"log/slog"
	"os"
)

// New builds the process logger. Development gets human-readable text,
// everything else gets JSON lines.
func New(w io.Writer, level slog.Level, environment string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: level}
	if environment == "development" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts)).With("service", "reajuste")
}
