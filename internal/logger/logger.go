// Package logger builds the slog logger shared by the server and the CLI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New returns a logger for app writing in the given encoding ("json" or "console").
func New(app, level, encoding string) (*slog.Logger, error) {
	return newWithWriter(os.Stdout, app, level, encoding)
}

func newWithWriter(w io.Writer, app, level, encoding string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	switch encoding {
	case "json", "":
		handler = slog.NewJSONHandler(w, opts)
	case "console":
		opts.AddSource = true
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("logger: encoding %q is not supported", encoding)
	}

	return slog.New(handler).With(slog.String("app", app)), nil
}

// ParseLevel converts a textual level to slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: level %q is not supported", level)
	}
}

// Err returns the attribute used for errors in every log line.
//
//	log.Error("failed to settle payment", logger.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

// Discard returns a logger that drops everything; used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
