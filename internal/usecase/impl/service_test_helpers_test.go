package impl

import (
	"io"
	"log/slog"
)

// newDiscardLogger creates a logger that discards all output, for tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
