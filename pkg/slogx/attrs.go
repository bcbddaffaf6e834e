package slogx

import (
	"log/slog"

	"github.com/casualjim/tryget"
)

// Error returns a slog.Attr representing the provided error.
// The attribute key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// Result returns a slog.Attr for a lookup result. The payload of an
// unsuccessful result is never logged.
func Result[T any](key string, res tryget.Result[T]) slog.Attr {
	return slog.Any(key, res)
}

const (
	// KeyLoggerName is the key for the logger name attribute.
	KeyLoggerName = "logger"
)

// LoggerName creates a slog.Attr with the provided logger name.
// The attribute key is defined by KeyLoggerName.
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
