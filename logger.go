package d20hist

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip building attributes entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while a harness goroutine is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for d20hist and its sub-packages.
// By default, d20hist produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by d20hist:
//   - [slog.LevelDebug]: per-tick diagnostics (normalization, layout changes)
//   - [slog.LevelInfo]: harness lifecycle events (window created, surface format)
//   - [slog.LevelWarn]: non-fatal harness issues (texture upload failures)
//
// Example:
//
//	d20hist.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by d20hist.
// Sub-packages (integration/d20canvas, integration/d20term) call this to share
// the same logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugEnabled reports whether the current logger would emit debug records.
// Hot paths check it before building attributes.
func debugEnabled() (*slog.Logger, bool) {
	l := Logger()
	return l, l.Enabled(context.Background(), slog.LevelDebug)
}
