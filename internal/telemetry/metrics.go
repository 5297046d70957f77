package telemetry

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// SyncMetricsMeterName is the name used for the sync metrics meter
const SyncMetricsMeterName = "github.com/schoolgis/schoolsync/sync"

// SyncMetrics holds the OpenTelemetry instruments for sync operation metrics
type SyncMetrics struct {
	syncDuration     metric.Float64Histogram
	outcomes         metric.Int64Counter
	entriesAdded     metric.Int64Counter
	upstreamRequests metric.Int64Counter
	upstreamDuration metric.Float64Histogram
}

// NewSyncMetrics creates a new SyncMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	syncDuration, err := meter.Float64Histogram(
		"schoolsync_sync_duration_seconds",
		metric.WithDescription("Duration of sync runs in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 5, 10, 30, 60, 300, 900, 1800, 3600),
	)
	if err != nil {
		return nil, err
	}

	outcomes, err := meter.Int64Counter(
		"schoolsync_identifier_outcomes_total",
		metric.WithDescription("Identifiers handled by detail sync, by outcome"),
		metric.WithUnit("{identifier}"),
	)
	if err != nil {
		return nil, err
	}

	entriesAdded, err := meter.Int64Counter(
		"schoolsync_directory_entries_added_total",
		metric.WithDescription("Directory entries inserted by directory sync"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return nil, err
	}

	upstreamRequests, err := meter.Int64Counter(
		"schoolsync_upstream_requests_total",
		metric.WithDescription("Requests sent to upstream services"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	upstreamDuration, err := meter.Float64Histogram(
		"schoolsync_upstream_request_duration_seconds",
		metric.WithDescription("Duration of upstream requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		syncDuration:     syncDuration,
		outcomes:         outcomes,
		entriesAdded:     entriesAdded,
		upstreamRequests: upstreamRequests,
		upstreamDuration: upstreamDuration,
	}, nil
}

// RecordSyncDuration records the duration of one sync run
func (m *SyncMetrics) RecordSyncDuration(ctx context.Context, kind, region string, duration time.Duration, success bool) {
	if m == nil || m.syncDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
		attribute.String("region", region),
		attribute.Bool("success", success),
	}

	m.syncDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordOutcome counts one handled identifier
func (m *SyncMetrics) RecordOutcome(ctx context.Context, status string) {
	if m == nil || m.outcomes == nil {
		return
	}
	m.outcomes.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordAdded counts directory entries inserted for a region
func (m *SyncMetrics) RecordAdded(ctx context.Context, region string, added int) {
	if m == nil || m.entriesAdded == nil || added <= 0 {
		return
	}
	m.entriesAdded.Add(ctx, int64(added), metric.WithAttributes(attribute.String("region", region)))
}

// ObserveUpstream records one upstream request attempt. Its signature matches httpclient.Observer.
func (m *SyncMetrics) ObserveUpstream(ctx context.Context, rawURL string, statusCode int, duration time.Duration, err error) {
	if m == nil || m.upstreamRequests == nil {
		return
	}

	host := "unknown"
	if u, perr := url.Parse(rawURL); perr == nil && u.Host != "" {
		host = u.Host
	}
	status := strconv.Itoa(statusCode)
	if statusCode == 0 {
		status = "none"
	}

	attrs := metric.WithAttributes(
		attribute.String("host", host),
		attribute.String("status_code", status),
		attribute.Bool("error", err != nil),
	)
	m.upstreamRequests.Add(ctx, 1, attrs)
	m.upstreamDuration.Record(ctx, duration.Seconds(), attrs)
}
