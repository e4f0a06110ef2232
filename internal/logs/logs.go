// Package logs builds the slog loggers handed to every component that does
// real work. Demos narrate through their io.Writer instead; logging is for
// the service and infrastructure code.
package logs

import (
	"log/slog"
	"os"
	"strings"
)

// GetLoggerFromString resolves a level name (debug, info, warn, error,
// case-insensitive) and returns a text logger on stderr. Unknown names fall
// back to info.
func GetLoggerFromString(level string) *slog.Logger {
	return GetLoggerFromLevel(parseLevel(level))
}

// GetLoggerFromLevel returns a text logger on stderr at the given level.
func GetLoggerFromLevel(level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
