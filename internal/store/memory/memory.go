// Package memory provides an in-process implementation of the store contracts,
// used by tests and by dry runs that must not touch PostgreSQL.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

type detailKey struct {
	identifier string
	year       string
}

type skipEntry struct {
	record store.SkipRecord
	seq    uint64
}

// memStore implements store.Store
type memStore struct {
	mu sync.RWMutex // Protects every map below and seq

	now func() time.Time
	seq uint64

	master    map[string]schools.MasterObjectID
	directory map[string]schools.DirectoryEntry
	details   map[detailKey]schools.DetailRecord
	skipped   map[detailKey]skipEntry
	requests  map[int64]store.DataRequest
	nextReqID int64
	runs      map[uuid.UUID]store.SyncRun
}

var _ store.Store = (*memStore)(nil)

// Option is a functional option for configuring the memory store
type Option func(*memStore)

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *memStore) {
		s.now = now
	}
}

// New creates an empty in-memory store.
func New(opts ...Option) store.Store {
	s := &memStore{
		now:       time.Now,
		master:    make(map[string]schools.MasterObjectID),
		directory: make(map[string]schools.DirectoryEntry),
		details:   make(map[detailKey]schools.DetailRecord),
		skipped:   make(map[detailKey]skipEntry),
		requests:  make(map[int64]store.DataRequest),
		runs:      make(map[uuid.UUID]store.SyncRun),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (*memStore) Ping(context.Context) error { return nil }

func (*memStore) Close() {}

func (s *memStore) ListObjectIDs(_ context.Context, region schools.Region) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, obj := range s.master {
		if obj.StateCode == region.StateCode && obj.DistrictCode == region.DistrictCode {
			ids = append(ids, obj.ObjectID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *memStore) ImportMasterObjects(_ context.Context, objects []schools.MasterObjectID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, obj := range objects {
		if obj.ObjectID == "" {
			return 0, fmt.Errorf("master object without id")
		}
	}
	for _, obj := range objects {
		s.master[obj.ObjectID] = obj
	}
	return int64(len(objects)), nil
}

func (s *memStore) KnownObjectIDs(_ context.Context, region schools.Region) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, e := range s.directory {
		if e.Region() == region {
			ids = append(ids, e.ObjectID)
		}
	}
	return ids, nil
}

// UpsertEntry keeps the region of an existing entry, like the database upsert.
func (s *memStore) UpsertEntry(_ context.Context, entry schools.DirectoryEntry) (bool, error) {
	if entry.Identifier == "" {
		return false, fmt.Errorf("directory entry without identifier")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.directory[entry.Identifier]
	if ok {
		entry.StateCode = existing.StateCode
		entry.DistrictCode = existing.DistrictCode
	}
	s.directory[entry.Identifier] = entry
	return !ok, nil
}

func (s *memStore) ListIdentifiers(_ context.Context, region schools.Region) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for id, e := range s.directory {
		if e.Region() == region {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (s *memStore) GetEntry(_ context.Context, identifier string) (*schools.DirectoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.directory[identifier]
	if !ok {
		return nil, fmt.Errorf("directory entry %s: %w", identifier, store.ErrNotFound)
	}
	return &e, nil
}

func (s *memStore) Exists(_ context.Context, identifier, yearLabel string) (store.Presence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.details[detailKey{identifier, yearLabel}]
	switch {
	case !ok:
		return store.PresenceAbsent, nil
	case rec.SchoolName != nil && strings.TrimSpace(*rec.SchoolName) != "":
		return store.PresenceComplete, nil
	default:
		return store.PresenceIncomplete, nil
	}
}

func (s *memStore) Upsert(_ context.Context, rec *schools.DetailRecord) error {
	if rec == nil || rec.Identifier == "" || rec.YearLabel == "" {
		return fmt.Errorf("detail record needs an identifier and a year")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := detailKey{rec.Identifier, rec.YearLabel}
	now := s.now()
	stored := *rec
	stored.CreatedAt = now
	if existing, ok := s.details[key]; ok {
		stored.CreatedAt = existing.CreatedAt
	}
	stored.UpdatedAt = now
	s.details[key] = stored
	return nil
}

func (s *memStore) Get(_ context.Context, identifier, yearLabel string) (*schools.DetailRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.details[detailKey{identifier, yearLabel}]
	if !ok {
		return nil, fmt.Errorf("detail %s/%s: %w", identifier, yearLabel, store.ErrNotFound)
	}
	return &rec, nil
}

func (s *memStore) Record(_ context.Context, identifier string, region schools.Region, yearLabel, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := detailKey{identifier, yearLabel}
	// An empty code keeps the one already recorded.
	if existing, ok := s.skipped[key]; ok {
		if region.StateCode == "" {
			region.StateCode = existing.record.StateCode
		}
		if region.DistrictCode == "" {
			region.DistrictCode = existing.record.DistrictCode
		}
	}

	s.seq++
	s.skipped[key] = skipEntry{
		record: store.SkipRecord{
			Identifier:   identifier,
			YearLabel:    yearLabel,
			StateCode:    region.StateCode,
			DistrictCode: region.DistrictCode,
			Reason:       reason,
			CreatedAt:    s.now(),
		},
		seq: s.seq,
	}
	return nil
}

func (s *memStore) Clear(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.skipped {
		if key.identifier == identifier {
			delete(s.skipped, key)
		}
	}
	return nil
}

func (s *memStore) List(_ context.Context, filter store.SkipFilter) (*store.SkipPage, error) {
	filter = filter.Normalize()

	s.mu.RLock()
	entries := make([]skipEntry, 0, len(s.skipped))
	for _, e := range s.skipped {
		if filter.StateCode != "" && e.record.StateCode != filter.StateCode {
			continue
		}
		if filter.DistrictCode != "" && e.record.DistrictCode != filter.DistrictCode {
			continue
		}
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	// newest first; the sequence breaks ties between equal timestamps
	slices.SortFunc(entries, func(a, b skipEntry) int {
		if c := b.record.CreatedAt.Compare(a.record.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.seq, a.seq)
	})

	page := &store.SkipPage{
		Records: []store.SkipRecord{},
		Total:   int64(len(entries)),
		Page:    filter.Page,
		Limit:   filter.Limit,
	}
	start := min(filter.Offset(), len(entries))
	end := min(start+filter.Limit, len(entries))
	for _, e := range entries[start:end] {
		page.Records = append(page.Records, e.record)
	}
	return page, nil
}

func (s *memStore) Summary(_ context.Context) ([]store.SkipSummary, error) {
	s.mu.RLock()
	counts := make(map[store.SkipSummary]int64)
	for _, e := range s.skipped {
		key := store.SkipSummary{
			StateCode:    e.record.StateCode,
			DistrictCode: e.record.DistrictCode,
			YearLabel:    e.record.YearLabel,
			Reason:       e.record.Reason,
		}
		counts[key]++
	}
	s.mu.RUnlock()

	out := make([]store.SkipSummary, 0, len(counts))
	for key, n := range counts {
		key.Count = n
		out = append(out, key)
	}
	slices.SortFunc(out, func(a, b store.SkipSummary) int {
		return cmp.Or(
			cmp.Compare(a.StateCode, b.StateCode),
			cmp.Compare(a.DistrictCode, b.DistrictCode),
			cmp.Compare(a.YearLabel, b.YearLabel),
			cmp.Compare(b.Count, a.Count),
			cmp.Compare(a.Reason, b.Reason),
		)
	})
	return out, nil
}

func (s *memStore) CreateRequest(_ context.Context, userID, stateCode string, districtCodes []string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextReqID++
	s.requests[s.nextReqID] = store.DataRequest{
		ID:            s.nextReqID,
		UserID:        userID,
		StateCode:     stateCode,
		DistrictCodes: slices.Clone(districtCodes),
		Status:        store.RequestPending,
		CreatedAt:     s.now(),
	}
	return s.nextReqID, nil
}

func (s *memStore) FindOverlappingPending(_ context.Context, region schools.Region) ([]store.DataRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.DataRequest
	for _, req := range s.requests {
		if req.Status == store.RequestPending &&
			req.StateCode == region.StateCode &&
			slices.Contains(req.DistrictCodes, region.DistrictCode) {
			out = append(out, req)
		}
	}
	slices.SortFunc(out, func(a, b store.DataRequest) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (s *memStore) MarkResolved(_ context.Context, ids []int64) ([]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var resolved []int64
	now := s.now()
	for _, id := range ids {
		req, ok := s.requests[id]
		if !ok || req.Status != store.RequestPending {
			continue
		}
		req.Status = store.RequestResolved
		req.ResolvedAt = &now
		s.requests[id] = req
		resolved = append(resolved, id)
	}
	return resolved, nil
}

func (s *memStore) GetRequest(_ context.Context, id int64) (*store.DataRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, fmt.Errorf("data request %d: %w", id, store.ErrNotFound)
	}
	return &req, nil
}

func (s *memStore) StartRun(_ context.Context, kind store.RunKind, region schools.Region, yearLabel string) (uuid.UUID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to generate run id: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[id] = store.SyncRun{
		ID:        id,
		Kind:      kind,
		Region:    region,
		YearLabel: yearLabel,
		Status:    store.RunRunning,
		StartedAt: s.now(),
	}
	return id, nil
}

func (s *memStore) FinishRun(_ context.Context, id uuid.UUID, outcome store.RunOutcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, ok := s.runs[id]
	if !ok {
		return fmt.Errorf("sync run %s: %w", id, store.ErrNotFound)
	}
	now := s.now()
	run.Status = outcome.Status
	if outcome.YearLabel != "" {
		run.YearLabel = outcome.YearLabel
	}
	run.Added = outcome.Added
	run.Processed = outcome.Processed
	run.Skipped = outcome.Skipped
	run.Failed = outcome.Failed
	run.Message = outcome.Message
	run.FinishedAt = &now
	s.runs[id] = run
	return nil
}

func (s *memStore) GetRun(_ context.Context, id uuid.UUID) (*store.SyncRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, fmt.Errorf("sync run %s: %w", id, store.ErrNotFound)
	}
	return &run, nil
}
