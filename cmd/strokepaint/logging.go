package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// Environment variables read by logOptionsFromEnv.
const (
	envLogLevel  = "PAINTCORE_LOG_LEVEL"
	envLogFormat = "PAINTCORE_LOG_FORMAT"
	envLogFile   = "PAINTCORE_LOG_FILE"
)

// logOptions controls logger construction. Empty fields fall back to
// info level text output on stderr.
type logOptions struct {
	Level  string
	Format string // "text" or "json"
	File   string // optional path for a rotated JSON log
}

func logOptionsFromEnv() logOptions {
	return logOptions{
		Level:  getenv(envLogLevel, "info"),
		Format: getenv(envLogFormat, "text"),
		File:   os.Getenv(envLogFile),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// newLogger builds a logger writing to w and, when opts.File is set, to a
// rotating file. The returned closer flushes the file sink.
func newLogger(w io.Writer, opts logOptions) (*slog.Logger, io.Closer) {
	ho := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	var console slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		console = slog.NewJSONHandler(w, ho)
	} else {
		console = slog.NewTextHandler(w, ho)
	}

	if strings.TrimSpace(opts.File) == "" {
		return slog.New(console), nopCloser{}
	}
	file := &lj.Logger{Filename: opts.File, MaxSize: 10, MaxBackups: 3, MaxAge: 28}
	h := multiHandler(console, slog.NewJSONHandler(file, ho))
	return slog.New(h), file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

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

// multiHandler fans records out to several handlers.
func multiHandler(hs ...slog.Handler) slog.Handler { return &multi{hs: hs} }

type multi struct{ hs []slog.Handler }

func (m *multi) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.hs {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multi) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.hs {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) WithAttrs(attrs []slog.Attr) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithAttrs(attrs)
	}
	return &multi{hs: res}
}

func (m *multi) WithGroup(name string) slog.Handler {
	res := make([]slog.Handler, len(m.hs))
	for i, h := range m.hs {
		res[i] = h.WithGroup(name)
	}
	return &multi{hs: res}
}
