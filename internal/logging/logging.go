// Package logging builds the diagnostic logger. Records go to stderr so
// they never mix with the listing on stdout.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w. With debug unset every record
// is discarded.
func New(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
