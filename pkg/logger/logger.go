package logger

import (
	"log/slog"
	"os"
)

// Log defaults to an info-level JSON logger so packages (and their tests)
// can log before Init runs.
var Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// Init reconfigures the process logger for serving: JSON to stdout at
// debug level.
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
