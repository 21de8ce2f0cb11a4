// Package diag is a thin structured-logging wrapper used only by the
// demonstration harness in cmd/sketchbench. The core encode/combine/
// expand/decode path (gf64, polygf, sketch, decode) is a pure,
// synchronous computation with nothing worth narrating and stays
// completely silent; logging is not threaded through it.
package diag

import (
	"log/slog"
	"os"
)

// New returns a text-handler slog.Logger writing to stderr, the
// default shape used by the bench harness to report round sizes and
// timings.
func New() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
