package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		opts             []Option
		expectNoOpTracer bool
		expectNoOpMeter  bool
		errorContains    string
	}{
		{
			name:             "no config gives no-op providers",
			expectNoOpTracer: true,
			expectNoOpMeter:  true,
		},
		{
			name:             "disabled config gives no-op providers",
			opts:             []Option{WithTelemetryConfig(&Config{Enabled: false})},
			expectNoOpTracer: true,
			expectNoOpMeter:  true,
		},
		{
			name: "enabled without signals gives no-op providers",
			opts: []Option{WithTelemetryConfig(&Config{
				Enabled: true,
				Tracing: &TracingConfig{Enabled: false},
				Metrics: &MetricsConfig{Enabled: false},
			})},
			expectNoOpTracer: true,
			expectNoOpMeter:  true,
		},
		{
			name: "tracing only",
			opts: []Option{WithTelemetryConfig(&Config{
				Enabled:  true,
				Insecure: true,
				Tracing:  &TracingConfig{Enabled: true, Sampling: 0.5},
			})},
			expectNoOpMeter: true,
		},
		{
			name: "both signals",
			opts: []Option{WithTelemetryConfig(&Config{
				Enabled:  true,
				Insecure: true,
				Tracing:  &TracingConfig{Enabled: true},
				Metrics:  &MetricsConfig{Enabled: true, Interval: "15s"},
			})},
		},
		{
			name: "invalid sampling",
			opts: []Option{WithTelemetryConfig(&Config{
				Enabled: true,
				Tracing: &TracingConfig{Enabled: true, Sampling: 1.5},
			})},
			errorContains: "invalid telemetry configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tel, err := New(context.Background(), tt.opts...)
			if tt.errorContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { shutdownQuickly(tel) })

			if tt.expectNoOpTracer {
				assert.IsType(t, tracenoop.TracerProvider{}, tel.TracerProvider())
			} else {
				assert.IsType(t, &sdktrace.TracerProvider{}, tel.TracerProvider())
			}
			if tt.expectNoOpMeter {
				assert.IsType(t, metricnoop.MeterProvider{}, tel.MeterProvider())
			} else {
				assert.IsType(t, &sdkmetric.MeterProvider{}, tel.MeterProvider())
			}
			assert.NotNil(t, tel.Tracer("test"))
			assert.NotNil(t, tel.Meter("test"))
		})
	}
}

func TestTelemetryShutdownTwice(t *testing.T) {
	t.Parallel()

	tel, err := New(context.Background(), WithTelemetryConfig(&Config{
		Enabled:  true,
		Insecure: true,
		Metrics:  &MetricsConfig{Enabled: true},
	}))
	require.NoError(t, err)

	// no collector is listening, so only the absence of a panic is asserted
	assert.NotPanics(t, func() { shutdownQuickly(tel) })
	assert.NotPanics(t, func() { shutdownQuickly(tel) })
}

func shutdownQuickly(tel *Telemetry) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_ = tel.Shutdown(ctx)
}

func TestPrometheusMetricsHandler(t *testing.T) {
	t.Parallel()

	tel, err := New(context.Background(), WithTelemetryConfig(&Config{
		Enabled: true,
		Metrics: &MetricsConfig{Enabled: true, Exporter: ExporterPrometheus},
	}))
	require.NoError(t, err)
	t.Cleanup(func() { shutdownQuickly(tel) })
	require.NotNil(t, tel.MetricsHandler())

	counter, err := tel.Meter("test").Int64Counter("test.requests")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	tel.MetricsHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "test_requests_total")
}

func TestMetricsHandlerNilForOTLP(t *testing.T) {
	t.Parallel()

	tel, err := New(context.Background())
	require.NoError(t, err)
	assert.Nil(t, tel.MetricsHandler())
}

func TestNewMeterProviderRejectsBadInterval(t *testing.T) {
	t.Parallel()

	_, err := NewMeterProvider(context.Background(),
		WithMetricsConfig(&MetricsConfig{Enabled: true, Interval: "soon"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid interval")
}

func TestConfigGetters(t *testing.T) {
	t.Parallel()

	empty := &Config{}
	assert.Equal(t, DefaultServiceName, empty.GetServiceName())
	assert.Equal(t, "unknown", empty.GetServiceVersion())
	assert.Equal(t, DefaultEndpoint, empty.GetEndpoint())
	assert.InDelta(t, DefaultSampling, (&TracingConfig{}).GetSampling(), 1e-9)

	set := &Config{ServiceName: "svc", ServiceVersion: "1.2.3", Endpoint: "otel:4318"}
	assert.Equal(t, "svc", set.GetServiceName())
	assert.Equal(t, "1.2.3", set.GetServiceVersion())
	assert.Equal(t, "otel:4318", set.GetEndpoint())
	assert.InDelta(t, 0.25, (&TracingConfig{Sampling: 0.25}).GetSampling(), 1e-9)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{name: "nil", config: nil},
		{name: "disabled ignores bad values", config: &Config{Tracing: &TracingConfig{Enabled: true, Sampling: -1}}},
		{name: "valid", config: &Config{Enabled: true, Tracing: &TracingConfig{Enabled: true, Sampling: 1}}},
		{
			name:    "negative sampling",
			config:  &Config{Enabled: true, Tracing: &TracingConfig{Enabled: true, Sampling: -0.1}},
			wantErr: "sampling must be between",
		},
		{
			name:    "bad interval",
			config:  &Config{Enabled: true, Metrics: &MetricsConfig{Enabled: true, Interval: "-5s"}},
			wantErr: "interval must be positive",
		},
		{
			name:    "unknown exporter",
			config:  &Config{Enabled: true, Metrics: &MetricsConfig{Enabled: true, Exporter: "statsd"}},
			wantErr: "unknown exporter",
		},
		{
			name:   "prometheus exporter",
			config: &Config{Enabled: true, Metrics: &MetricsConfig{Enabled: true, Exporter: ExporterPrometheus}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
