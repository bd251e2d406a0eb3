package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var traceContext = propagation.TraceContext{}

var (
	projectIDOnce   sync.Once
	cachedProjectID string
)

// spanContext extracts the W3C traceparent carried by h, if any.
func spanContext(h http.Header) (trace.SpanContext, bool) {
	sc := trace.SpanContextFromContext(traceContext.Extract(context.Background(), propagation.HeaderCarrier(h)))
	return sc, sc.IsValid()
}

func loggerWithTrace(base *zap.Logger, h http.Header, projectID, requestID string) *zap.Logger {
	if base == nil {
		base = zap.NewNop()
	}
	fields := traceFields(h, projectID)
	if requestID != "" {
		fields = append(fields, zap.String("requestId", requestID))
	}
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

func traceFields(h http.Header, projectID string) []zap.Field {
	resource := traceResource(h, projectID)
	if resource == "" {
		return nil
	}
	sc, _ := spanContext(h)
	return []zap.Field{
		zap.String("logging.googleapis.com/trace", resource),
		zap.String("logging.googleapis.com/spanId", sc.SpanID().String()),
		zap.Bool("logging.googleapis.com/trace_sampled", sc.IsSampled()),
	}
}

func traceResource(h http.Header, projectID string) string {
	if projectID == "" {
		return ""
	}
	sc, ok := spanContext(h)
	if !ok {
		return ""
	}
	return fmt.Sprintf("projects/%s/traces/%s", projectID, sc.TraceID())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func resolveProjectID() string {
	projectIDOnce.Do(func() {
		cachedProjectID = firstNonEmpty(
			os.Getenv("GOOGLE_CLOUD_PROJECT"),
			os.Getenv("GCP_PROJECT"),
			os.Getenv("GCLOUD_PROJECT"),
			os.Getenv("PROJECT_ID"),
		)
	})
	return cachedProjectID
}
