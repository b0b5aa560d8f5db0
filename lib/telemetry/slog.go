package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog replaces the default slog logger with a text handler writing
// to stderr. Debug enables debug-level output (including instrumented
// http request/response logs).
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
