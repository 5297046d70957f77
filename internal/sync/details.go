package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/schoolgis/schoolsync/internal/otel"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/sources/udise"
	"github.com/schoolgis/schoolsync/internal/store"
	"github.com/schoolgis/schoolsync/internal/validators"
)

const (
	// DefaultYearID is the academic year synced when a request does not name one.
	DefaultYearID = 11
	// DefaultChunkSize is the number of identifiers in flight when a request does not set one.
	DefaultChunkSize = 5
)

// Status is the result of handling one identifier.
type Status string

const (
	StatusProcessed Status = "processed"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Outcome is the result of handling one identifier. Reason is set for failures.
type Outcome struct {
	Identifier string `json:"udiseCode"`
	Status     Status `json:"status"`
	Reason     string `json:"reason,omitempty"`
}

// DetailRequest selects the identifiers and year of a detail sync.
type DetailRequest struct {
	// Region scopes the worklist when Identifiers is empty. It is recorded on skip records; when
	// empty, each skip takes its identifier's directory region.
	Region schools.Region
	// YearID defaults to DefaultYearID when not positive.
	YearID int
	// Identifiers overrides the region worklist when non-empty.
	Identifiers []string
	// ChunkSize defaults to DefaultChunkSize when not positive.
	ChunkSize int
	// Strict requires both school and block name in the report facet.
	Strict bool
}

// DetailResult summarizes a detail sync.
type DetailResult struct {
	RunID     uuid.UUID `json:"runId"`
	YearLabel string    `json:"yearDesc"`
	Processed int       `json:"processed"`
	Skipped   int       `json:"skipped"`
	Failed    int       `json:"failed"`
	Failures  []Outcome `json:"failures,omitempty"`
}

func (r *DetailResult) add(o Outcome) {
	switch o.Status {
	case StatusProcessed:
		r.Processed++
	case StatusSkipped:
		r.Skipped++
	default:
		r.Failed++
		r.Failures = append(r.Failures, o)
	}
}

// DetailEngine fetches and stores per-year detail records.
type DetailEngine struct {
	directory  store.DirectoryStore
	details    store.DetailStore
	ledger     store.SkipLedger
	statistics StatisticsService
	opts       *options
}

// NewDetailEngine creates a DetailEngine.
func NewDetailEngine(
	directory store.DirectoryStore,
	details store.DetailStore,
	ledger store.SkipLedger,
	statistics StatisticsService,
	opts ...Option,
) *DetailEngine {
	return &DetailEngine{
		directory:  directory,
		details:    details,
		ledger:     ledger,
		statistics: statistics,
		opts:       newOptions(opts),
	}
}

// SyncDetails processes the worklist in chunks. A failed identifier is recorded in the
// skip ledger and counted; it never aborts the run. When ctx is cancelled no further
// chunk is started and the partial result is returned with the context error. A year
// list that cannot be loaded fails the run before any identifier is handled.
func (e *DetailEngine) SyncDetails(ctx context.Context, req DetailRequest) (*DetailResult, error) {
	req = normalizeRequest(req)
	explicit := len(req.Identifiers) > 0
	if !explicit {
		if err := req.Region.Validate(); err != nil {
			return nil, fmt.Errorf("invalid region: %w", err)
		}
	}

	var result *DetailResult
	run := func() error {
		var err error
		result, err = e.syncDetails(ctx, req, explicit)
		return err
	}
	var err error
	if explicit {
		err = run()
	} else {
		err = e.opts.withRegionLock(ctx, store.RunKindDetail, req.Region, run)
	}
	return result, err
}

func (e *DetailEngine) syncDetails(ctx context.Context, req DetailRequest, explicit bool) (*DetailResult, error) {
	ctx, span := otel.StartSpan(ctx, e.opts.tracer, "sync.SyncDetails",
		otel.WithRegion(req.Region.StateCode, req.Region.DistrictCode))
	defer span.End()
	span.SetAttributes(otel.AttrYearID.Int(req.YearID))

	start := e.opts.now()
	yearLabel, err := e.yearLabel(ctx, req.YearID)
	if err != nil {
		otel.RecordError(span, err)
		return nil, err
	}
	span.SetAttributes(otel.AttrYearLabel.String(yearLabel))

	logger := slog.With("region", req.Region.String(), "year", yearLabel)

	worklist := req.Identifiers
	if !explicit {
		ids, err := e.directory.ListIdentifiers(ctx, req.Region)
		if err != nil {
			err = fmt.Errorf("failed to list identifiers for %s: %w", req.Region, err)
			otel.RecordError(span, err)
			return nil, err
		}
		worklist = dedupe(ids)
	}

	run := e.opts.startRun(ctx, store.RunKindDetail, req.Region, yearLabel)
	result := &DetailResult{RunID: run.ID(), YearLabel: yearLabel}
	if len(worklist) == 0 {
		logger.InfoContext(ctx, "Detail sync has nothing to do")
		run.finish(ctx, store.RunOutcome{Status: store.RunCompleted, YearLabel: yearLabel})
		return result, nil
	}

	logger.InfoContext(ctx, "Starting detail sync",
		"identifiers", len(worklist),
		"chunk_size", req.ChunkSize,
		"strict", req.Strict)

	chunks := chunk(worklist, req.ChunkSize)
	var runErr error
	for i, ids := range chunks {
		if err := ctx.Err(); err != nil {
			runErr = err
			logger.WarnContext(ctx, "Detail sync interrupted", "completed_chunks", i, "chunks", len(chunks), "error", err)
			break
		}
		for _, o := range e.runChunk(ctx, req, yearLabel, ids) {
			result.add(o)
		}
		logger.DebugContext(ctx, "Detail chunk done", "chunk", i+1, "chunks", len(chunks))
	}

	if !explicit {
		e.opts.resolveTickets(ctx, req.Region)
	}

	duration := e.opts.now().Sub(start)
	outcome := store.RunOutcome{
		Status:    store.RunCompleted,
		YearLabel: yearLabel,
		Processed: result.Processed,
		Skipped:   result.Skipped,
		Failed:    result.Failed,
	}
	if runErr != nil {
		otel.RecordError(span, runErr)
		outcome.Status = store.RunFailed
		outcome.Message = runErr.Error()
	}
	run.finish(ctx, outcome)
	e.opts.metrics.RecordSyncDuration(ctx, string(store.RunKindDetail), req.Region.String(), duration, runErr == nil)

	logger.InfoContext(ctx, "Detail sync finished",
		"processed", result.Processed,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"duration", duration)
	return result, runErr
}

// runChunk handles ids concurrently and waits for all of them.
func (e *DetailEngine) runChunk(ctx context.Context, req DetailRequest, yearLabel string, ids []string) []Outcome {
	outcomes := make([]Outcome, len(ids))
	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			outcomes[i] = e.handle(ctx, req, yearLabel, id)
			return nil
		})
	}
	_ = g.Wait()
	return outcomes
}

// handle runs one identifier through existence check, key resolution, fetch, validation and storage.
func (e *DetailEngine) handle(ctx context.Context, req DetailRequest, yearLabel, identifier string) Outcome {
	ctx, span := otel.StartSpan(ctx, e.opts.tracer, "sync.handleIdentifier")
	defer span.End()
	span.SetAttributes(otel.AttrIdentifier.String(identifier))

	outcome := e.process(ctx, req, yearLabel, identifier)
	span.SetAttributes(otel.AttrOutcome.String(string(outcome.Status)))
	e.opts.metrics.RecordOutcome(ctx, string(outcome.Status))

	if outcome.Status == StatusFailed {
		region := e.skipRegion(ctx, req.Region, identifier)
		if err := e.ledger.Record(ctx, identifier, region, yearLabel, outcome.Reason); err != nil {
			slog.ErrorContext(ctx, "Failed to record skipped school",
				"identifier", identifier,
				"reason", outcome.Reason,
				"error", err)
		}
	}
	return outcome
}

// skipRegion is the region recorded with a skip. Explicit runs without a region take the
// identifier's directory entry; an unknown identifier keeps the empty region.
func (e *DetailEngine) skipRegion(ctx context.Context, region schools.Region, identifier string) schools.Region {
	if region.StateCode != "" || region.DistrictCode != "" {
		return region
	}
	entry, err := e.directory.GetEntry(ctx, identifier)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "Failed to look up region of skipped school", "identifier", identifier, "error", err)
		}
		return region
	}
	return entry.Region()
}

func (e *DetailEngine) process(ctx context.Context, req DetailRequest, yearLabel, identifier string) Outcome {
	presence, err := e.details.Exists(ctx, identifier, yearLabel)
	if err != nil {
		return failed(identifier, err)
	}
	if presence == store.PresenceComplete {
		return Outcome{Identifier: identifier, Status: StatusSkipped}
	}

	key, found, err := e.statistics.ResolveKey(ctx, identifier)
	if err != nil {
		return failed(identifier, err)
	}
	if !found {
		return Outcome{Identifier: identifier, Status: StatusFailed, Reason: validators.ReasonKeyNotFound}
	}

	payload, err := e.statistics.FetchAll(ctx, key, req.YearID)
	if err != nil {
		return failed(identifier, err)
	}
	if ok, reason := validators.Validate(payload, req.Strict); !ok {
		return Outcome{Identifier: identifier, Status: StatusFailed, Reason: reason}
	}

	rec := schools.BuildDetailRecord(identifier, key, yearLabel, payload)
	if err := e.details.Upsert(ctx, rec); err != nil {
		return failed(identifier, err)
	}
	if err := e.ledger.Clear(ctx, identifier); err != nil {
		slog.WarnContext(ctx, "Failed to clear skipped school", "identifier", identifier, "error", err)
	}
	return Outcome{Identifier: identifier, Status: StatusProcessed}
}

// yearLabel resolves yearID. Only a year missing from the service's list falls
// back to the decimal id; any other failure is returned.
func (e *DetailEngine) yearLabel(ctx context.Context, yearID int) (string, error) {
	label, err := e.statistics.ResolveYear(ctx, yearID)
	switch {
	case err == nil && strings.TrimSpace(label) != "":
		return strings.TrimSpace(label), nil
	case err != nil && !errors.Is(err, udise.ErrYearNotFound):
		return "", fmt.Errorf("failed to resolve academic year %d: %w", yearID, err)
	}
	fallback := strconv.Itoa(yearID)
	slog.WarnContext(ctx, "Academic year is not listed, using its id as the label",
		"year_id", yearID,
		"label", fallback)
	return fallback, nil
}

func failed(identifier string, err error) Outcome {
	return Outcome{
		Identifier: identifier,
		Status:     StatusFailed,
		Reason:     validators.ReasonErrorPrefix + err.Error(),
	}
}

func normalizeRequest(req DetailRequest) DetailRequest {
	req.Region = schools.NewRegion(req.Region.StateCode, req.Region.DistrictCode)
	if req.YearID <= 0 {
		req.YearID = DefaultYearID
	}
	if req.ChunkSize <= 0 {
		req.ChunkSize = DefaultChunkSize
	}
	req.Identifiers = dedupe(req.Identifiers)
	return req
}

// dedupe trims ids and drops empty and repeated values, keeping the first occurrence.
func dedupe(ids []string) []string {
	return difference(ids, nil)
}
