package paintcore

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a stroke on another goroutine logs.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by paintcore.
// By default paintcore produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by paintcore:
//   - [slog.LevelDebug]: stroke lifecycle (init, spacing, finish, tiles captured)
//   - [slog.LevelInfo]: undo groups pushed
//   - [slog.LevelWarn]: non-fatal issues (unsupported mask precision, aborted init)
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by paintcore.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
