package sync

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/schoolgis/schoolsync/internal/otel"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

// maxBatchSize is the largest object id list the GIS portal accepts in one query.
const maxBatchSize = 100

// DirectoryResult summarizes a directory sync.
type DirectoryResult struct {
	RunID uuid.UUID `json:"runId"`
	Added int       `json:"added"`
}

// DirectoryEngine adds missing directory entries for a region.
type DirectoryEngine struct {
	inventory store.RegionInventory
	directory store.DirectoryStore
	fetcher   DirectoryFetcher
	opts      *options
}

// NewDirectoryEngine creates a DirectoryEngine.
func NewDirectoryEngine(
	inventory store.RegionInventory,
	directory store.DirectoryStore,
	fetcher DirectoryFetcher,
	opts ...Option,
) *DirectoryEngine {
	return &DirectoryEngine{
		inventory: inventory,
		directory: directory,
		fetcher:   fetcher,
		opts:      newOptions(opts),
	}
}

// SyncDirectory fetches the entries of region whose object ids are in the inventory
// but not in the directory yet. Only an inventory failure is returned as an error.
func (e *DirectoryEngine) SyncDirectory(ctx context.Context, region schools.Region) (*DirectoryResult, error) {
	region = schools.NewRegion(region.StateCode, region.DistrictCode)
	if err := region.Validate(); err != nil {
		return nil, fmt.Errorf("invalid region: %w", err)
	}

	var result *DirectoryResult
	err := e.opts.withRegionLock(ctx, store.RunKindDirectory, region, func() error {
		var err error
		result, err = e.syncDirectory(ctx, region)
		return err
	})
	return result, err
}

func (e *DirectoryEngine) syncDirectory(ctx context.Context, region schools.Region) (*DirectoryResult, error) {
	ctx, span := otel.StartSpan(ctx, e.opts.tracer, "sync.SyncDirectory",
		otel.WithRegion(region.StateCode, region.DistrictCode))
	defer span.End()

	start := e.opts.now()
	run := e.opts.startRun(ctx, store.RunKindDirectory, region, "")
	result := &DirectoryResult{RunID: run.ID()}

	logger := slog.With("region", region.String())
	logger.InfoContext(ctx, "Starting directory sync")

	added, err := e.addMissing(ctx, region, logger)
	duration := e.opts.now().Sub(start)
	if err != nil {
		otel.RecordError(span, err)
		run.finish(ctx, store.RunOutcome{Status: store.RunFailed, Message: err.Error()})
		e.opts.metrics.RecordSyncDuration(ctx, string(store.RunKindDirectory), region.String(), duration, false)
		logger.ErrorContext(ctx, "Directory sync failed", "error", err)
		return nil, err
	}

	result.Added = added
	span.SetAttributes(otel.AttrResultCount.Int(added))
	e.opts.resolveTickets(ctx, region)

	run.finish(ctx, store.RunOutcome{Status: store.RunCompleted, Added: added})
	e.opts.metrics.RecordAdded(ctx, region.String(), added)
	e.opts.metrics.RecordSyncDuration(ctx, string(store.RunKindDirectory), region.String(), duration, true)
	logger.InfoContext(ctx, "Directory sync completed", "added", added, "duration", duration)
	return result, nil
}

// addMissing fetches and stores the missing entries in sequential batches and returns the number inserted.
func (e *DirectoryEngine) addMissing(ctx context.Context, region schools.Region, logger *slog.Logger) (int, error) {
	universe, err := e.inventory.ListObjectIDs(ctx, region)
	if err != nil {
		return 0, fmt.Errorf("failed to list object ids for %s: %w", region, err)
	}

	known, err := e.directory.KnownObjectIDs(ctx, region)
	if err != nil {
		logger.WarnContext(ctx, "Failed to list known object ids, treating region as empty", "error", err)
		known = nil
	}

	missing := difference(universe, known)
	logger.InfoContext(ctx, "Compared directory with inventory",
		"inventory", len(universe),
		"known", len(known),
		"missing", len(missing))
	if len(missing) == 0 {
		return 0, nil
	}

	added := 0
	for _, batch := range chunk(missing, e.opts.batchSize) {
		if ctx.Err() != nil {
			logger.WarnContext(ctx, "Directory sync interrupted", "error", ctx.Err())
			break
		}
		added += e.storeBatch(ctx, region, batch, logger)
	}
	return added, nil
}

func (e *DirectoryEngine) storeBatch(ctx context.Context, region schools.Region, batch []string, logger *slog.Logger) int {
	ctx, span := otel.StartSpan(ctx, e.opts.tracer, "sync.fetchDirectoryBatch")
	defer span.End()
	span.SetAttributes(otel.AttrBatchSize.Int(len(batch)))

	entries, err := e.fetcher.FetchBatch(ctx, batch, region)
	if err != nil {
		otel.RecordError(span, err)
		logger.ErrorContext(ctx, "Directory batch failed", "batch_size", len(batch), "first_object_id", batch[0], "error", err)
		return 0
	}

	added := 0
	for _, entry := range entries {
		inserted, err := e.directory.UpsertEntry(ctx, entry)
		if err != nil {
			logger.ErrorContext(ctx, "Failed to store directory entry",
				"identifier", entry.Identifier,
				"object_id", entry.ObjectID,
				"error", err)
			continue
		}
		if inserted {
			added++
		}
	}
	span.SetAttributes(otel.AttrResultCount.Int(added))
	logger.DebugContext(ctx, "Stored directory batch", "batch_size", len(batch), "returned", len(entries), "added", added)
	return added
}

// difference returns the trimmed values of universe that are not in known, in universe order, without duplicates.
func difference(universe, known []string) []string {
	seen := make(map[string]struct{}, len(known)+len(universe))
	for _, id := range known {
		seen[strings.TrimSpace(id)] = struct{}{}
	}
	out := make([]string, 0, len(universe))
	for _, id := range universe {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// chunk splits items into consecutive slices of at most size elements.
func chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		size = 1
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end])
	}
	return out
}
