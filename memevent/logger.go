package memevent

import (
	"io"
	"log/slog"
)

// L is the package logger, discarding output by default. Embedding
// applications redirect it through SetLogger; this package never
// configures handlers, files, or levels itself.
var L = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger redirects the package logger. Call before any Handler drains
// events if log output is wanted.
func SetLogger(l *slog.Logger) {
	L = l
}
