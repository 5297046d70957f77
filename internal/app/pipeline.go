package app

import (
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/httpclient"
	"github.com/schoolgis/schoolsync/internal/lock"
	"github.com/schoolgis/schoolsync/internal/sources/gis"
	"github.com/schoolgis/schoolsync/internal/sources/udise"
	"github.com/schoolgis/schoolsync/internal/store"
	pkgsync "github.com/schoolgis/schoolsync/internal/sync"
	"github.com/schoolgis/schoolsync/internal/telemetry"
	"github.com/schoolgis/schoolsync/internal/tickets"
	"github.com/schoolgis/schoolsync/internal/versions"
)

// TracerName names the tracer shared by the sync pipeline and its upstream clients.
const TracerName = "github.com/schoolgis/schoolsync"

// Instruments carries the optional telemetry providers of the pipeline.
type Instruments struct {
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// NewPipeline builds the sync manager described by cfg over st: the GIS and statistics
// clients, the ticket reconciler and both engines.
func NewPipeline(cfg *config.Config, st store.Store, locker lock.Locker, inst Instruments) (*pkgsync.Pipeline, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}

	metrics, err := telemetry.NewSyncMetrics(inst.MeterProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync metrics: %w", err)
	}

	var tracer trace.Tracer
	if inst.TracerProvider != nil {
		tracer = inst.TracerProvider.Tracer(TracerName)
	}

	common := upstreamOptions(cfg, metrics, tracer)

	gisOpts := append(append([]httpclient.Option{}, common...), headerOptions(cfg.GIS.Headers)...)
	fetcher := gis.NewFetcher(httpclient.NewDefaultClient(cfg.GIS.GetTimeout(), gisOpts...), cfg.GIS.GetURL())

	udiseOpts := append(append([]httpclient.Option{}, common...), headerOptions(cfg.UDISE.Headers)...)
	if cfg.UDISE.RequestsPerSecond > 0 {
		udiseOpts = append(udiseOpts, httpclient.WithRateLimit(cfg.UDISE.RequestsPerSecond, cfg.UDISE.Burst))
	}
	statistics := udise.NewClient(
		httpclient.NewDefaultClient(cfg.UDISE.GetTimeout(), udiseOpts...),
		cfg.UDISE.GetBaseURL(),
		udise.Endpoints(cfg.UDISE.Endpoints),
	)

	if locker == nil {
		locker = lock.Noop()
	}

	slog.Debug("Sync pipeline configured",
		"gis_url", cfg.GIS.GetURL(),
		"udise_url", cfg.UDISE.GetBaseURL(),
		"batch_size", cfg.GIS.GetBatchSize(),
		"max_retries", cfg.HTTP.MaxRetries,
		"metrics", metrics != nil,
		"tracing", tracer != nil,
	)

	return pkgsync.NewManager(st, fetcher, statistics,
		pkgsync.WithLocker(locker),
		pkgsync.WithRunStore(st),
		pkgsync.WithMetrics(metrics),
		pkgsync.WithTracer(tracer),
		pkgsync.WithTicketReconciler(tickets.NewReconciler(st, tickets.WithTracer(tracer))),
		pkgsync.WithBatchSize(cfg.GIS.GetBatchSize()),
	), nil
}

// upstreamOptions are shared by every upstream client.
func upstreamOptions(cfg *config.Config, metrics *telemetry.SyncMetrics, tracer trace.Tracer) []httpclient.Option {
	opts := []httpclient.Option{
		httpclient.WithHeader("User-Agent", versions.UserAgent()),
		httpclient.WithMaxRetries(cfg.HTTP.MaxRetries),
		httpclient.WithInitialBackoff(cfg.HTTP.GetInitialBackoff()),
		httpclient.WithTracer(tracer),
	}
	if metrics != nil {
		opts = append(opts, httpclient.WithObserver(metrics.ObserveUpstream))
	}
	return opts
}

func headerOptions(headers map[string]string) []httpclient.Option {
	opts := make([]httpclient.Option, 0, len(headers))
	for k, v := range headers {
		opts = append(opts, httpclient.WithHeader(k, v))
	}
	return opts
}
