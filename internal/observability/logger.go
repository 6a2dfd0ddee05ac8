package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const DefaultLevel = "warn"

type Logger struct {
	logger *slog.Logger
}

// NewLogger writes text records at or above level to w.
func NewLogger(w io.Writer, component string, level slog.Level) Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return Logger{logger: slog.New(h).With("component", component)}
}

// Discard drops every record.
func Discard() Logger {
	return NewLogger(io.Discard, "", slog.LevelError)
}

func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
	}
	return lvl, nil
}

func (l Logger) Debug(msg string, args ...any) {
	l.get().Debug(msg, args...)
}

func (l Logger) Info(msg string, args ...any) {
	l.get().Info(msg, args...)
}

func (l Logger) Error(msg string, args ...any) {
	l.get().Error(msg, args...)
}

func (l Logger) get() *slog.Logger {
	if l.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.logger
}
