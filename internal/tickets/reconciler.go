// Package tickets resolves pending data requests once the region they ask for has been synced.
package tickets

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/schoolgis/schoolsync/internal/otel"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

// Reconciler marks data requests resolved after a region sync.
type Reconciler struct {
	requests store.DataRequestStore
	tracer   trace.Tracer
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithTracer sets the tracer used for reconciliation spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(r *Reconciler) {
		r.tracer = tracer
	}
}

// NewReconciler creates a Reconciler over requests.
func NewReconciler(requests store.DataRequestStore, opts ...Option) *Reconciler {
	r := &Reconciler{requests: requests}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveAfterSync resolves every pending request for the region's state that lists its district.
// Failures are logged and never returned.
func (r *Reconciler) ResolveAfterSync(ctx context.Context, region schools.Region) {
	ctx, span := otel.StartSpan(ctx, r.tracer, "tickets.ResolveAfterSync",
		otel.WithRegion(region.StateCode, region.DistrictCode))
	defer span.End()

	logger := slog.With("region", region.String())

	pending, err := r.requests.FindOverlappingPending(ctx, region)
	if err != nil {
		otel.RecordError(span, err)
		logger.ErrorContext(ctx, "Failed to look up pending data requests", "error", err)
		return
	}
	if len(pending) == 0 {
		logger.DebugContext(ctx, "No pending data requests for region")
		return
	}

	ids := make([]int64, 0, len(pending))
	for _, req := range pending {
		ids = append(ids, req.ID)
	}

	resolved, err := r.requests.MarkResolved(ctx, ids)
	if err != nil {
		otel.RecordError(span, err)
		logger.ErrorContext(ctx, "Failed to resolve data requests", "request_ids", ids, "error", err)
		return
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(resolved)))
	logger.InfoContext(ctx, "Resolved data requests after sync", "count", len(resolved), "request_ids", resolved)
}
