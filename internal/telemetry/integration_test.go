package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestMiddlewareTracesRoutes(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	Install(tp)
	defer func() { _ = tp.Shutdown(context.Background()) }()

	r := mux.NewRouter()
	r.Use(Middleware(""))
	r.HandleFunc("/api/v1/calendar/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		path        string
		traceParent string
		wantSpans   int
	}{
		{name: "task route", path: "/api/v1/calendar/tasks/abc", wantSpans: 1},
		{name: "continues incoming trace", path: "/api/v1/calendar/tasks/def", traceParent: "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", wantSpans: 1},
		{name: "health check filtered", path: "/healthz", wantSpans: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exporter.Reset()

			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.traceParent != "" {
				req.Header.Set("traceparent", tt.traceParent)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != http.StatusOK {
				t.Errorf("Expected status OK, got %d", rr.Code)
			}
			spans := exporter.GetSpans()
			if len(spans) != tt.wantSpans {
				t.Fatalf("Expected %d spans, got %d", tt.wantSpans, len(spans))
			}
			if tt.wantSpans == 0 {
				return
			}
			span := spans[0]
			if !strings.Contains(span.Name, "/api/v1/calendar/tasks/{id}") {
				t.Errorf("Expected route template span name, got %q", span.Name)
			}
			if tt.traceParent != "" && span.SpanContext.TraceID().String() != "4bf92f3577b34da6a3ce929d0e0e4736" {
				t.Errorf("Expected incoming trace id to be continued, got %s", span.SpanContext.TraceID())
			}
		})
	}
}
