// Package logging builds the structured logger shared by the relay binaries.
package logging

import (
	"io"
	"log/slog"
)

// New returns a JSON logger at the given level. Lambda forwards stdout to
// CloudWatch, where JSON lines are queryable by attribute.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
