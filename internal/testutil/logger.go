package testutil

import (
	"io"
	"log/slog"
)

// NopLogger returns a logger that drops everything, keeping test
// output readable. The services all take a *slog.Logger, so suites
// pass this instead of nil.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
