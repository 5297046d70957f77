// Package logging builds the process-wide slog logger: JSON to stderr, optional
// rotating file output, and trace/span ids on every record logged with a traced context.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/schoolgis/schoolsync/internal/config"
)

const (
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 5
	defaultMaxAgeDays = 30
)

// Option customizes New.
type Option func(*options)

type options struct {
	stderr io.Writer
	level  *slog.Level
}

// WithWriter replaces stderr as the primary destination.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.stderr = w
	}
}

// WithLevel forces a level, ignoring environment and configuration.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = &level
	}
}

// New returns a logger for cfg and a closer for the rotating file, if any.
func New(cfg config.LoggingConfig, opts ...Option) (*slog.Logger, io.Closer) {
	o := &options{stderr: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}

	level := LevelFromEnv(cfg.Level)
	if o.level != nil {
		level = *o.level
	}

	out := o.stderr
	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    orDefault(cfg.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: orDefault(cfg.MaxBackups, defaultMaxBackups),
			MaxAge:     orDefault(cfg.MaxAgeDays, defaultMaxAgeDays),
			Compress:   cfg.Compress,
		}
		out = io.MultiWriter(o.stderr, file)
		closer = file
	}

	base := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(&traceHandler{Handler: base}), closer
}

// LevelFromEnv resolves the log level from SCHOOLSYNC_LOG_LEVEL, then LOG_LEVEL,
// then the configured value. Unknown values fall back to info.
func LevelFromEnv(configured string) slog.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	levelStr := v.GetString("LOG_LEVEL")
	if levelStr == "" {
		levelStr = os.Getenv("LOG_LEVEL")
	}
	if levelStr == "" {
		levelStr = configured
	}

	level, ok := ParseLevel(levelStr)
	if !ok {
		slog.Warn("Invalid log level, using INFO", "value", levelStr)
	}
	return level
}

// ParseLevel maps a level name to a slog.Level. The empty string is info.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// traceHandler adds trace_id and span_id to records logged with a traced context.
type traceHandler struct {
	slog.Handler
}

func (h *traceHandler) Handle(ctx context.Context, r slog.Record) error {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(
			slog.String("trace_id", span.SpanContext().TraceID().String()),
			slog.String("span_id", span.SpanContext().SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h *traceHandler) WithGroup(name string) slog.Handler {
	return &traceHandler{Handler: h.Handler.WithGroup(name)}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
