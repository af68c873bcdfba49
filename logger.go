package randgen

import (
	"log/slog"
	"os"

	"github.com/quantmesh/randgen/core"
	"github.com/quantmesh/randgen/seed"
)

// Logger wraps slog.Logger with randgen-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSeeds adds the seed pair fields to the logger.
func (l *Logger) WithSeeds(p seed.Pair) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed_a", p.A, "seed_b", p.B),
	}
}

// LogReseed logs a reseed operation.
func (l *Logger) LogReseed(p seed.Pair, err error) {
	if err != nil {
		l.Error("reseed failed",
			"error", err,
		)
	} else {
		l.Debug("reseed completed",
			"seed_a", p.A,
			"seed_b", p.B,
		)
	}
}

// LogThreadLocalCreate logs the lazy creation of a thread-local generator.
func (l *Logger) LogThreadLocalCreate(gid uint64, p seed.Pair) {
	l.Debug("thread-local generator created",
		"goroutine", gid,
		"seed_a", p.A,
		"seed_b", p.B,
	)
}

// LogTraceError logs a failed trace write. Draws continue regardless; the
// trace stream is an observer, not a participant.
func (l *Logger) LogTraceError(kind core.Kind, err error) {
	l.Warn("trace record failed",
		"kind", kind.String(),
		"error", err,
	)
}
