package application

import (
	"io"
	"log/slog"
)

// ResolveLogger returns a usable logger even when none was injected.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
