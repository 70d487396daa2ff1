// Package logging builds the structured logger shared by the CLI and the
// HTTP server: log/slog with a JSON or text handler, optional lumberjack file
// rotation, a runtime-adjustable level, and OpenTelemetry trace correlation.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes where and how to log.
type Config struct {
	Service    string `mapstructure:"service"`
	Level      string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=json text"`
	File       string `mapstructure:"file"`        // empty: write to Output (stderr by default)
	MaxSize    int    `mapstructure:"max_size"`    // MB per rotated file
	MaxBackups int    `mapstructure:"max_backups"` // rotated files kept
	MaxAge     int    `mapstructure:"max_age"`     // days kept
	Compress   bool   `mapstructure:"compress"`

	// Output overrides the destination when File is empty (tests).
	Output io.Writer `mapstructure:"-"`
}

// Logger wraps *slog.Logger with the level variable backing it, so the level
// can be changed at runtime (config hot reload).
type Logger struct {
	*slog.Logger
	Service string
	level   *slog.LevelVar
	closer  io.Closer
}

// TraceHandler decorates a slog.Handler and adds trace_id/span_id from the
// OpenTelemetry span carried by the record's context.
type TraceHandler struct {
	slog.Handler
}

// Handle implements slog.Handler.
func (h *TraceHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}

	return h.Handler.Handle(ctx, r)
}

// WithAttrs keeps the decorator on derived handlers.
func (h *TraceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup keeps the decorator on derived handlers.
func (h *TraceHandler) WithGroup(name string) slog.Handler {
	return &TraceHandler{Handler: h.Handler.WithGroup(name)}
}

// ParseLevel maps "debug"|"info"|"warn"|"error" (any case) to a slog.Level;
// anything else is Info.
func ParseLevel(s string) slog.Level {
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

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.Level))

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "timestamp"
			}
			return a
		},
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	switch {
	case cfg.File != "":
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		w, closer = lj, lj
	case cfg.Output != nil:
		w = cfg.Output
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	service := cfg.Service
	if service == "" {
		service = "hungarian"
	}

	return &Logger{
		Logger:  slog.New(&TraceHandler{Handler: handler}).With(slog.String("service", service)),
		Service: service,
		level:   level,
		closer:  closer,
	}
}

// SetLevel changes the minimum level of every record logged from now on.
func (l *Logger) SetLevel(s string) {
	l.level.Set(ParseLevel(s))
}

// Level returns the current minimum level.
func (l *Logger) Level() slog.Level {
	return l.level.Level()
}

// Close flushes and closes the rotating file, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}

	return l.closer.Close()
}

// LogDuration logs "<operation> finished" with its duration when the
// returned func is called.
func (l *Logger) LogDuration(ctx context.Context, operation string, args ...any) func() {
	start := time.Now()

	return func() {
		l.InfoContext(ctx, fmt.Sprintf("%s finished", operation), append(args, "duration", time.Since(start))...)
	}
}
