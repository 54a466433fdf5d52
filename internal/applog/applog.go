// Package applog builds the slog loggers used by the etri example
// programs, optionally teeing records to a rotating log file.
package applog

import "io"
import "os"
import "context"
import "strings"
import "log/slog"

import "gopkg.in/natefinch/lumberjack.v2"

// Options controls logger initialization. Values can be provided
// directly or through environment variables with [FromEnv]():
//   - ETRI_LOG_LEVEL=debug|info|warn|error
//   - ETRI_LOG_FORMAT=text|json
//   - ETRI_LOG_SOURCE=true|false
//   - ETRI_LOG_FILE=<path> (enables rotated JSON file logs)
type Options struct {
	Level     string
	Format    string
	AddSource bool
	File      string
}

// Builds options from the environment. Defaults to info level
// text logs without source locations.
func FromEnv() Options {
	return Options{
		Level:     getenv("ETRI_LOG_LEVEL", "info"),
		Format:    getenv("ETRI_LOG_FORMAT", "text"),
		AddSource: strings.EqualFold(getenv("ETRI_LOG_SOURCE", "false"), "true"),
		File:      os.Getenv("ETRI_LOG_FILE"),
	}
}

// Creates a logger writing to stderr and, if a file is set, to a
// rotating JSON log file. The returned logger is also set as the
// slog default.
func Init(opts Options) *slog.Logger {
	logger := New(os.Stderr, opts)
	slog.SetDefault(logger)
	return logger
}

// Like [Init](), but writing console output to the given writer
// and without touching the slog default.
func New(console io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{ Level: ParseLevel(opts.Level), AddSource: opts.AddSource }

	var handlers []slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		handlers = append(handlers, slog.NewJSONHandler(console, handlerOpts))
	} else {
		handlers = append(handlers, slog.NewTextHandler(console, handlerOpts))
	}

	if strings.TrimSpace(opts.File) != "" {
		rotating := &lumberjack.Logger{
			Filename: opts.File,
			MaxSize: 10, // megabytes
			MaxBackups: 3,
			MaxAge: 28, // days
			Compress: true,
		}
		handlers = append(handlers, slog.NewJSONHandler(rotating, handlerOpts))
	}

	if len(handlers) == 1 { return slog.New(handlers[0]) }
	return slog.New(multiHandler(handlers))
}

// Converts a level name to a [slog.Level]. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug": return slog.LevelDebug
	case "warn", "warning": return slog.LevelWarn
	case "error": return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" { return value }
	return fallback
}

// Fans out log records to multiple handlers.
type multiHandler []slog.Handler

func (self multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range self {
		if handler.Enabled(ctx, level) { return true }
	}
	return false
}

func (self multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range self {
		if !handler.Enabled(ctx, record.Level) { continue }
		err := handler.Handle(ctx, record.Clone())
		if err != nil && firstErr == nil { firstErr = err }
	}
	return firstErr
}

func (self multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make(multiHandler, len(self))
	for i, handler := range self {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return handlers
}

func (self multiHandler) WithGroup(name string) slog.Handler {
	handlers := make(multiHandler, len(self))
	for i, handler := range self {
		handlers[i] = handler.WithGroup(name)
	}
	return handlers
}
