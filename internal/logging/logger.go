package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs a JSON handler writing to w as the default logger and
// returns it, so callers can later fan it out alongside other handlers
// without building a second copy.
func Setup(w io.Writer, level slog.Level) slog.Handler {
	if w == nil {
		w = os.Stdout
	}
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return handler
}
