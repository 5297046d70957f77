package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func newTestTracerProvider(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return exporter, tp
}

func TestMetricsMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("nil provider passes through", func(t *testing.T) {
		t.Parallel()

		mw, err := MetricsMiddleware(nil)
		require.NoError(t, err)

		rr := httptest.NewRecorder()
		mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusAccepted, rr.Code)
	})

	t.Run("records route pattern and status", func(t *testing.T) {
		t.Parallel()

		reader, mp := newTestMeterProvider(t)
		mw, err := MetricsMiddleware(mp)
		require.NoError(t, err)

		r := chi.NewRouter()
		r.Use(mw)
		r.Get("/v1/runs/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/runs/abc", nil))
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/runs/def", nil))

		got := collect(t, reader)
		total, ok := got["schoolsync_http_requests_total"].Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, total.DataPoints, 1)
		assert.Equal(t, int64(2), total.DataPoints[0].Value)

		route, _ := total.DataPoints[0].Attributes.Value(attribute.Key("route"))
		assert.Equal(t, "/v1/runs/{id}", route.AsString())
		status, _ := total.DataPoints[0].Attributes.Value(attribute.Key("status_code"))
		assert.Equal(t, "404", status.AsString())

		active, ok := got["schoolsync_http_active_requests"].Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, active.DataPoints, 1)
		assert.Equal(t, int64(0), active.DataPoints[0].Value)
	})
}

func TestTracingMiddlewareNilProvider(t *testing.T) {
	t.Parallel()

	called := false
	rr := httptest.NewRecorder()
	TracingMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	})).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/v1/sync/details", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestTracingMiddlewareStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		expected   codes.Code
	}{
		{name: "2xx is ok", statusCode: http.StatusOK, expected: codes.Ok},
		{name: "4xx is unset", statusCode: http.StatusBadRequest, expected: codes.Unset},
		{name: "5xx is error", statusCode: http.StatusBadGateway, expected: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exporter, tp := newTestTracerProvider(t)
			handler := TracingMiddleware(tp)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/skipped", nil))

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Equal(t, tt.expected, spans[0].Status.Code)

			var statusAttr int64
			for _, attr := range spans[0].Attributes {
				if attr.Key == semconv.HTTPResponseStatusCodeKey {
					statusAttr = attr.Value.AsInt64()
				}
			}
			assert.Equal(t, int64(tt.statusCode), statusAttr)
		})
	}
}

func TestTracingMiddlewareRouteAndParent(t *testing.T) {
	t.Parallel()

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	exporter, tp := newTestTracerProvider(t)
	r := chi.NewRouter()
	r.Use(TracingMiddleware(tp))
	r.Get("/v1/runs/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	traceID := "0af7651916cd43dd8448eb211c80319c"
	req := httptest.NewRequest(http.MethodGet, "/v1/runs/42", nil)
	req.Header.Set("traceparent", "00-"+traceID+"-b7ad6b7169203331-01")
	req.Header.Set("User-Agent", strings.Repeat("x", MaxUserAgentLength+10))
	r.ServeHTTP(httptest.NewRecorder(), req)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /v1/runs/{id}", spans[0].Name)
	assert.Equal(t, traceID, spans[0].SpanContext.TraceID().String())

	for _, attr := range spans[0].Attributes {
		if attr.Key == semconv.UserAgentOriginalKey {
			assert.Len(t, attr.Value.AsString(), MaxUserAgentLength)
		}
	}
}

func TestTracingMiddlewareSkipsProbes(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/health", "/readiness"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			exporter, tp := newTestTracerProvider(t)
			rr := httptest.NewRecorder()
			TracingMiddleware(tp)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Empty(t, exporter.GetSpans())
		})
	}
}

func TestRoutePatternUnknown(t *testing.T) {
	t.Parallel()
	assert.Equal(t, unknownRoute, routePattern(httptest.NewRequest(http.MethodGet, "/x", nil)))
}
