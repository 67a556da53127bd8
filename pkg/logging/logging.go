package logging

import (
	"log/slog"
	"os"

	"github.com/plotbay/plotbay-backend/pkg/env"
)

// Setup builds the process-wide logger for the given mode: JSON in prod,
// human-readable text everywhere else.
func Setup(mode env.Mode) *slog.Logger {
	opts := &slog.HandlerOptions{Level: mode.SlogLevel()}

	var handler slog.Handler
	if mode == env.Prod {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
