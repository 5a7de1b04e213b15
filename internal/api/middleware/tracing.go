package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts an OpenTelemetry span for each HTTP request and
// propagates the context to downstream handlers and services.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("sleep-calculator/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := r.Method + " " + r.URL.Path
		ctx, span := tracer.Start(r.Context(), spanName,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		if id := GetRequestID(ctx); id != "" {
			span.SetAttributes(attribute.String("http.request_id", id))
		}
		if r.URL.RawQuery != "" {
			span.SetAttributes(attribute.String("http.query", r.URL.RawQuery))
		}

		rec := newStatusRecorder(w)
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		span.SetAttributes(
			attribute.Int("http.status_code", rec.statusCode),
			attribute.Int64("http.duration_ms", time.Since(start).Milliseconds()),
		)
		if rec.statusCode >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rec.statusCode))
		}
	})
}
