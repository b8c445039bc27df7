package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config son los ajustes mínimos del logger del servidor
type Config struct {
	// Level es el nivel textual (debug, info, warn, error)
	Level string
	// Format controla la codificación de salida (json o text)
	Format string
}

// ParseLevel convierte el nivel textual a slog.Level; info por defecto
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New construye un slog.Logger sobre el writer indicado
func New(w io.Writer, cfg Config) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts))
	default:
		return slog.New(slog.NewTextHandler(w, opts))
	}
}
