package coordinator

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/schools"
	pkgsync "github.com/schoolgis/schoolsync/internal/sync"
)

// jitterFraction bounds the random offset applied to every interval, as a fraction of it.
const jitterFraction = 0.1

// Coordinator runs periodic syncs of the configured regions
type Coordinator interface {
	// Start runs an initial pass and then one pass per interval.
	// Blocks until context is cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully stops the coordinator and waits for the running pass to return
	Stop() error
}

// defaultCoordinator is the default implementation of Coordinator
type defaultCoordinator struct {
	manager  pkgsync.Manager
	schedule schedule

	// Lifecycle management
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	done       chan struct{}
}

// Option is a function that configures the coordinator
type Option func(*defaultCoordinator)

// WithInterval overrides the configured interval.
func WithInterval(interval time.Duration) Option {
	return func(c *defaultCoordinator) {
		c.schedule.interval = interval
	}
}

// New creates a new coordinator with injected dependencies
func New(manager pkgsync.Manager, cfg *config.Config, opts ...Option) Coordinator {
	c := &defaultCoordinator{
		manager:  manager,
		schedule: scheduleFromConfig(cfg),
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// jittered returns base shifted by a random offset of at most jitterFraction of base,
// so several instances do not hit the upstream services at the same moment.
func jittered(base time.Duration) time.Duration {
	spread := int64(float64(base) * jitterFraction)
	if spread <= 0 {
		return base
	}
	//nolint:gosec // G404: Non-cryptographic randomness is sufficient for polling jitter
	return base + time.Duration(rand.Int64N(2*spread)-spread)
}

// Start begins background sync coordination for all configured regions
func (c *defaultCoordinator) Start(ctx context.Context) error {
	coordCtx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancelFunc = cancel
	c.mu.Unlock()
	defer func() {
		cancel()
		close(c.done)
		slog.Info("Background sync coordinator shutting down")
	}()

	if !c.schedule.enabled() {
		slog.Info("Periodic sync disabled",
			"interval", c.schedule.interval,
			"region_count", len(c.schedule.regions))
		<-coordCtx.Done()
		return nil
	}

	interval := jittered(c.schedule.interval)
	slog.Info("Starting background sync coordinator",
		"region_count", len(c.schedule.regions),
		"base_interval", c.schedule.interval,
		"actual_interval", interval)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.runPass(coordCtx)

	for {
		select {
		case <-ticker.C:
			c.runPass(coordCtx)
			ticker.Reset(jittered(c.schedule.interval))
		case <-coordCtx.Done():
			slog.Info("Sync coordinator stopping")
			return nil
		}
	}
}

// Stop gracefully stops the coordinator
func (c *defaultCoordinator) Stop() error {
	c.mu.Lock()
	cancel := c.cancelFunc
	c.mu.Unlock()

	if cancel != nil {
		slog.Info("Stopping sync coordinator")
		cancel()
		<-c.done
	}
	return nil
}

// runPass syncs every region in order, directory first.
func (c *defaultCoordinator) runPass(ctx context.Context) {
	for _, region := range c.schedule.regions {
		if ctx.Err() != nil {
			return
		}
		c.syncRegion(ctx, region)
	}
}

// syncRegion runs both phases for region. A failed directory sync still lets the detail sync run
// over the entries stored so far.
func (c *defaultCoordinator) syncRegion(ctx context.Context, region schools.Region) {
	logger := slog.With("region", region.String())
	start := time.Now()

	dir, err := c.manager.SyncDirectory(ctx, region)
	switch {
	case errors.Is(err, pkgsync.ErrRegionLocked):
		logger.InfoContext(ctx, "Region is being synced elsewhere, skipping")
		return
	case err != nil:
		logger.ErrorContext(ctx, "Scheduled directory sync failed", "error", err)
	default:
		logger.InfoContext(ctx, "Scheduled directory sync completed", "added", dir.Added)
	}

	det, err := c.manager.SyncDetails(ctx, pkgsync.DetailRequest{
		Region:    region,
		YearID:    c.schedule.yearID,
		ChunkSize: c.schedule.chunkSize,
		Strict:    c.schedule.strict,
	})
	switch {
	case errors.Is(err, pkgsync.ErrRegionLocked):
		logger.InfoContext(ctx, "Region is being synced elsewhere, skipping details")
	case err != nil:
		logger.ErrorContext(ctx, "Scheduled detail sync failed", "error", err)
	default:
		logger.InfoContext(ctx, "Scheduled region sync completed",
			"processed", det.Processed,
			"skipped", det.Skipped,
			"failed", det.Failed,
			"duration", time.Since(start))
	}
}
