package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type contextKey string

const traceIDKey contextKey = "trace_id"

// TraceIDField is the log field that carries the trace ID.
const TraceIDField = "trace_id"

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ContextWithTraceID stores a trace ID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey).(string)
	return id
}

// GenerateTraceID returns a new ULID string.
func GenerateTraceID() string {
	return ulid.Make().String()
}

// GetOrGenerateTraceID returns the trace ID in ctx or a fresh one.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return GenerateTraceID()
}

// WithTraceID stores the trace ID in ctx and attaches a logger carrying it.
func WithTraceID(ctx context.Context, logger zerolog.Logger, traceID string) context.Context {
	ctx = ContextWithTraceID(ctx, traceID)
	l := logger.With().Str(TraceIDField, traceID).Logger()
	return l.WithContext(ctx)
}
