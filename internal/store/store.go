// Package store defines the persistence contracts of the sync pipeline.
// The db subpackage implements them on PostgreSQL and the memory subpackage
// keeps everything in process for tests and dry runs.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/schoolgis/schoolsync/internal/schools"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
)

const (
	// DefaultPageSize is used when a list call does not set a limit.
	DefaultPageSize = 50
	// MaxPageSize caps the limit of a list call.
	MaxPageSize = 500
)

// Presence describes what the detail store holds for an identifier and year.
type Presence int

const (
	// PresenceAbsent means no row exists.
	PresenceAbsent Presence = iota
	// PresenceIncomplete means a row exists without a school name.
	PresenceIncomplete
	// PresenceComplete means a row exists with a school name.
	PresenceComplete
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go RegionInventory,DirectoryStore,DetailStore,SkipLedger,DataRequestStore,RunStore

// RegionInventory lists the authoritative object ids of a region.
type RegionInventory interface {
	ListObjectIDs(ctx context.Context, region schools.Region) ([]string, error)
}

// MasterImporter loads the object id reference list.
type MasterImporter interface {
	ImportMasterObjects(ctx context.Context, objects []schools.MasterObjectID) (int64, error)
}

// DirectoryStore persists directory entries.
type DirectoryStore interface {
	// KnownObjectIDs returns the object ids already recorded for region.
	KnownObjectIDs(ctx context.Context, region schools.Region) ([]string, error)
	// UpsertEntry inserts or refreshes an entry keyed by identifier and reports whether it was new.
	UpsertEntry(ctx context.Context, entry schools.DirectoryEntry) (inserted bool, err error)
	// ListIdentifiers returns the identifiers recorded for region.
	ListIdentifiers(ctx context.Context, region schools.Region) ([]string, error)
	// GetEntry returns one entry or ErrNotFound.
	GetEntry(ctx context.Context, identifier string) (*schools.DirectoryEntry, error)
}

// DetailStore persists per-year detail records.
type DetailStore interface {
	Exists(ctx context.Context, identifier, yearLabel string) (Presence, error)
	// Upsert writes rec, overwriting every mapped column of an existing (identifier, year) row.
	Upsert(ctx context.Context, rec *schools.DetailRecord) error
	Get(ctx context.Context, identifier, yearLabel string) (*schools.DetailRecord, error)
}

// SkipRecord is one skip ledger row.
type SkipRecord struct {
	Identifier   string    `json:"udiseCode"`
	YearLabel    string    `json:"yearDesc"`
	StateCode    string    `json:"stateCode"`
	DistrictCode string    `json:"districtCode"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SkipFilter selects a page of the skip ledger. Empty codes match everything.
type SkipFilter struct {
	StateCode    string
	DistrictCode string
	Page         int
	Limit        int
}

// Normalize clamps the page to at least 1 and the limit to 1..MaxPageSize.
func (f SkipFilter) Normalize() SkipFilter {
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit < 1:
		f.Limit = DefaultPageSize
	case f.Limit > MaxPageSize:
		f.Limit = MaxPageSize
	}
	return f
}

// Offset is the number of rows before the filter's page.
func (f SkipFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// SkipPage is one page of skip records, newest first.
type SkipPage struct {
	Records []SkipRecord `json:"data"`
	Total   int64        `json:"total"`
	Page    int          `json:"page"`
	Limit   int          `json:"limit"`
}

// SkipSummary counts skip records sharing a region, year and reason.
type SkipSummary struct {
	StateCode    string `json:"stateCode"`
	DistrictCode string `json:"districtCode"`
	YearLabel    string `json:"yearDesc"`
	Reason       string `json:"reason"`
	Count        int64  `json:"count"`
}

// SkipLedger tracks identifiers whose detail sync did not succeed.
type SkipLedger interface {
	// Record upserts on (identifier, year), replacing the reason and refreshing the timestamp.
	// An empty state or district code keeps the code already recorded.
	Record(ctx context.Context, identifier string, region schools.Region, yearLabel, reason string) error
	// Clear removes every year recorded for identifier.
	Clear(ctx context.Context, identifier string) error
	List(ctx context.Context, filter SkipFilter) (*SkipPage, error)
	Summary(ctx context.Context) ([]SkipSummary, error)
}

// RequestStatus is the lifecycle state of a data request.
type RequestStatus string

const (
	// RequestPending is a request that has not been served yet.
	RequestPending RequestStatus = "pending"
	// RequestResolved is a request whose region has been synced.
	RequestResolved RequestStatus = "resolved"
)

// DataRequest is a user ticket asking for a region's data.
type DataRequest struct {
	ID            int64         `json:"id"`
	UserID        string        `json:"userId,omitempty"`
	StateCode     string        `json:"stateCode"`
	DistrictCodes []string      `json:"districtCodes"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	ResolvedAt    *time.Time    `json:"resolvedAt,omitempty"`
}

// DataRequestStore persists data request tickets.
type DataRequestStore interface {
	CreateRequest(ctx context.Context, userID, stateCode string, districtCodes []string) (int64, error)
	// FindOverlappingPending returns pending requests for the region's state that list its district.
	FindOverlappingPending(ctx context.Context, region schools.Region) ([]DataRequest, error)
	// MarkResolved resolves the pending requests among ids and returns those it changed.
	MarkResolved(ctx context.Context, ids []int64) ([]int64, error)
	GetRequest(ctx context.Context, id int64) (*DataRequest, error)
}

// RunKind names the sync phase of a run.
type RunKind string

// RunStatus is the lifecycle state of a run.
type RunStatus string

const (
	RunKindDirectory RunKind = "DIRECTORY"
	RunKindDetail    RunKind = "DETAIL"

	RunRunning   RunStatus = "RUNNING"
	RunCompleted RunStatus = "COMPLETED"
	RunFailed    RunStatus = "FAILED"
)

// SyncRun records one sync invocation.
type SyncRun struct {
	ID         uuid.UUID      `json:"id"`
	Kind       RunKind        `json:"kind"`
	Region     schools.Region `json:"region"`
	YearLabel  string         `json:"yearDesc,omitempty"`
	Status     RunStatus      `json:"status"`
	Added      int            `json:"added"`
	Processed  int            `json:"processed"`
	Skipped    int            `json:"skipped"`
	Failed     int            `json:"failed"`
	Message    string         `json:"message,omitempty"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt *time.Time     `json:"finishedAt,omitempty"`
}

// RunOutcome is what a finished run reports.
type RunOutcome struct {
	Status    RunStatus
	YearLabel string
	Added     int
	Processed int
	Skipped   int
	Failed    int
	Message   string
}

// RunStore records sync runs for later inspection.
type RunStore interface {
	StartRun(ctx context.Context, kind RunKind, region schools.Region, yearLabel string) (uuid.UUID, error)
	FinishRun(ctx context.Context, id uuid.UUID, outcome RunOutcome) error
	GetRun(ctx context.Context, id uuid.UUID) (*SyncRun, error)
}

// Store is every persistence contract behind one handle.
type Store interface {
	RegionInventory
	MasterImporter
	DirectoryStore
	DetailStore
	SkipLedger
	DataRequestStore
	RunStore
	// Ping checks that the backing store is reachable.
	Ping(ctx context.Context) error
	Close()
}
