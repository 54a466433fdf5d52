package etri

import "context"
import "log/slog"
import "sync/atomic"

// Handler that discards everything. Enabled returns false so
// callers skip formatting altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Sets the logger used by etri. By default, etri is silent.
// Passing nil restores the default. Safe for concurrent use.
//
// Levels used:
//   - [slog.LevelDebug]: render summaries, tile evictions, skipped geometry.
//   - [slog.LevelWarn]: invalid textures and clip rects outside the target.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}

// Returns the current logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
