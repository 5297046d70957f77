package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/schoolgis/schoolsync/internal/lock"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
	"github.com/schoolgis/schoolsync/internal/telemetry"
)

// ErrRegionLocked is returned when another process is already syncing the region.
var ErrRegionLocked = errors.New("region sync already in progress")

// Manager runs the sync phases for a region.
//
//go:generate mockgen -destination=mocks/mock_manager.go -package=mocks github.com/schoolgis/schoolsync/internal/sync Manager
type Manager interface {
	// SyncDirectory adds the directory entries of region that are not stored yet.
	SyncDirectory(ctx context.Context, region schools.Region) (*DirectoryResult, error)

	// SyncDetails fetches and stores detail records for the requested worklist.
	SyncDetails(ctx context.Context, req DetailRequest) (*DetailResult, error)
}

// options holds the settings shared by both engines.
type options struct {
	locker    lock.Locker
	runs      store.RunStore
	metrics   *telemetry.SyncMetrics
	tracer    trace.Tracer
	tickets   TicketReconciler
	batchSize int
	now       func() time.Time
}

// Option configures an engine.
type Option func(*options)

// WithLocker guards every region sync with locker.
func WithLocker(locker lock.Locker) Option {
	return func(o *options) {
		o.locker = locker
	}
}

// WithRunStore records every sync as a run.
func WithRunStore(runs store.RunStore) Option {
	return func(o *options) {
		o.runs = runs
	}
}

// WithMetrics records sync metrics.
func WithMetrics(metrics *telemetry.SyncMetrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithTracer sets the tracer used for sync spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracer = tracer
	}
}

// WithTicketReconciler resolves data requests after region syncs.
func WithTicketReconciler(tickets TicketReconciler) Option {
	return func(o *options) {
		o.tickets = tickets
	}
}

// WithBatchSize sets the number of object ids per GIS query, clamped to 1..100.
func WithBatchSize(n int) Option {
	return func(o *options) {
		o.batchSize = n
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		locker:    lock.Noop(),
		batchSize: maxBatchSize,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.batchSize < 1 || o.batchSize > maxBatchSize {
		o.batchSize = maxBatchSize
	}
	return o
}

// withRegionLock runs fn while holding the lock for kind and region.
func (o *options) withRegionLock(ctx context.Context, kind store.RunKind, region schools.Region, fn func() error) error {
	key := fmt.Sprintf("%s:%s", kind, region)
	lease, err := o.locker.Obtain(ctx, key)
	if err != nil {
		if errors.Is(err, lock.ErrNotObtained) {
			return fmt.Errorf("%w: %s", ErrRegionLocked, region)
		}
		return err
	}
	defer func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			slog.WarnContext(ctx, "Failed to release region lock", "region", region.String(), "error", err)
		}
	}()
	return fn()
}

// startRun records the start of a run. A failure is logged and the run continues unrecorded.
func (o *options) startRun(ctx context.Context, kind store.RunKind, region schools.Region, yearLabel string) *runRecord {
	if o.runs == nil {
		return nil
	}
	id, err := o.runs.StartRun(ctx, kind, region, yearLabel)
	if err != nil {
		slog.WarnContext(ctx, "Failed to record sync run", "kind", kind, "region", region.String(), "error", err)
		return nil
	}
	return &runRecord{runs: o.runs, id: id}
}

func (o *options) resolveTickets(ctx context.Context, region schools.Region) {
	if o.tickets == nil {
		return
	}
	o.tickets.ResolveAfterSync(ctx, region)
}

// Pipeline is the Manager combining both engines.
type Pipeline struct {
	*DirectoryEngine
	*DetailEngine
}

var _ Manager = (*Pipeline)(nil)

// NewManager builds both engines over the same store and options.
func NewManager(
	st store.Store,
	directory DirectoryFetcher,
	statistics StatisticsService,
	opts ...Option,
) *Pipeline {
	return &Pipeline{
		DirectoryEngine: NewDirectoryEngine(st, st, directory, opts...),
		DetailEngine:    NewDetailEngine(st, st, st, statistics, opts...),
	}
}
