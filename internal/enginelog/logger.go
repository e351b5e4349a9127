// Package enginelog provides the engine's default structured logger,
// wired exactly the way the teacher's cmd/server wires slog: a text
// handler over stdout at info level, overridable by the host.
package enginelog

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text-handler slog.Logger writing to w at the given level,
// mirroring cmd/server/main.go's logger construction.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Default returns the engine's default logger: info level, stdout.
func Default() *slog.Logger {
	return New(os.Stdout, slog.LevelInfo)
}
