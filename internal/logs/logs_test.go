package logs

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  slog.Level
	}{
		{"lowercase debug", "debug", slog.LevelDebug},
		{"uppercase info", "INFO", slog.LevelInfo},
		{"warn alias", "warning", slog.LevelWarn},
		{"error with spaces", "  error ", slog.LevelError},
		{"unknown falls back to info", "verbose", slog.LevelInfo},
		{"empty falls back to info", "", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestGetLoggerFromString_EnabledLevels(t *testing.T) {
	req := require.New(t)

	log := GetLoggerFromString("warn")
	req.NotNil(log)
	req.False(log.Enabled(t.Context(), slog.LevelInfo))
	req.True(log.Enabled(t.Context(), slog.LevelError))
}
