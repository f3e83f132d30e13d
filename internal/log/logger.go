// Package log содержит настройку slog для утилиты.
package log

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel переводит имя уровня из конфигурации в slog.Level.
// Неизвестные значения дают LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger создает логгер с маскировкой секретов. format принимает
// значения "json" и "text".
func NewLogger(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(NewSecretMaskerHandler(handler))
}
