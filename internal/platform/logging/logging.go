// Package logging builds the process logger and carries request- and
// task-scoped loggers through context.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("route", "dish")))
//	logging.FromContext(ctx).ErrorContext(ctx, "effect failed",
//	    slog.String("operation", "LoadDish"), slog.Any("error", err))
//
// Effect and repository failures are logged with an operation name, the
// route or entity id involved, and the error under the "error" key.
// Sensitive attributes are masked before any handler sees them.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type loggerKey struct{}

// New returns a logger writing to w. format is "text" or anything else for
// JSON. An unparseable level means info; debug also records the caller.
func New(level, format string, w io.Writer) *slog.Logger {
	return slog.New(newHandler(parseLevel(level), format, w))
}

func newHandler(lvl slog.Level, format string, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactor(),
	}
	if format == "text" {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
