// Package logging writes structured log entries as one JSON object per line.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Fields holds additional key/value pairs attached to a log entry.
type Fields map[string]any

// Logger emits JSON lines with ts, level and msg fields through slog.
type Logger struct {
	sl *slog.Logger
}

// New returns a Logger writing to w, stamping entries in loc.
func New(w io.Writer, loc *time.Location) *Logger {
	if w == nil {
		w = os.Stdout
	}
	if loc == nil {
		loc = time.UTC
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: replaceAttr(loc),
	})
	return &Logger{sl: slog.New(h)}
}

// replaceAttr renames the built-in time key to ts, formats it in loc and
// lowercases the level.
func replaceAttr(loc *time.Location) func([]string, slog.Attr) slog.Attr {
	return func(groups []string, a slog.Attr) slog.Attr {
		if len(groups) > 0 {
			return a
		}
		switch a.Key {
		case slog.TimeKey:
			return slog.String("ts", a.Value.Time().In(loc).Format(time.RFC3339Nano))
		case slog.LevelKey:
			if lvl, ok := a.Value.Any().(slog.Level); ok {
				return slog.String(slog.LevelKey, strings.ToLower(lvl.String()))
			}
		}
		return a
	}
}

func (l *Logger) Info(msg string, fields Fields) {
	l.log(slog.LevelInfo, msg, fields)
}

func (l *Logger) Warn(msg string, fields Fields) {
	l.log(slog.LevelWarn, msg, fields)
}

// Error logs msg at error level with err attached under "error".
func (l *Logger) Error(msg string, err error, fields Fields) {
	attrs := toAttrs(fields)
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	l.sl.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

func (l *Logger) log(level slog.Level, msg string, fields Fields) {
	l.sl.LogAttrs(context.Background(), level, msg, toAttrs(fields)...)
}

// toAttrs converts fields to attributes. Keys that collide with the entry's
// own ts, level and msg are dropped.
func toAttrs(fields Fields) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(fields)+1)
	for k, v := range fields {
		switch k {
		case "ts", slog.TimeKey, slog.LevelKey, slog.MessageKey:
			continue
		}
		attrs = append(attrs, slog.Any(k, v))
	}
	return attrs
}
