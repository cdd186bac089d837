package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log defaults to a discarding logger so packages can log before Init.
var Log = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Init installs the JSON logger on stdout at the given level
// (debug, info, warn, error; anything else means info).
func Init(level string) {
	Log = New(os.Stdout, level)
	slog.SetDefault(Log)
}

func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
