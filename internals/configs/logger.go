package configs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// SetupLogger installs the default slog handler. log.Printf output goes
// through it as well once slog.SetDefault is called.
//
//	LOG_FORMAT=json  → JSON lines (production)
//	LOG_FORMAT=text  → tint colored text (default)
func SetupLogger() *slog.Logger {
	logger := NewLogger(os.Stdout, GetEnv("LOG_FORMAT", "text"), GetEnv("LOG_LEVEL", "info"))
	slog.SetDefault(logger)
	return logger
}

func NewLogger(w io.Writer, format, level string) *slog.Logger {
	lvl := parseLevel(level)

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      lvl,
			TimeFormat: "2006-01-02 15:04:05",
		})
	}
	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
