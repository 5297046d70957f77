package sync

import (
	"context"

	"github.com/schoolgis/schoolsync/internal/schools"
)

// DirectoryFetcher looks up directory entries by object id.
//
//go:generate mockgen -destination=mocks/mock_sources.go -package=mocks -source=interfaces.go
type DirectoryFetcher interface {
	FetchBatch(ctx context.Context, objectIDs []string, region schools.Region) ([]schools.DirectoryEntry, error)
}

// KeyResolver maps an identifier to the statistics service key.
type KeyResolver interface {
	// ResolveKey returns found=false with a nil error when the service has no match.
	ResolveKey(ctx context.Context, identifier string) (key string, found bool, err error)
}

// YearResolver maps an academic year id to its label.
type YearResolver interface {
	ResolveYear(ctx context.Context, yearID int) (string, error)
}

// DetailFetcher fetches every facet of a school for a year.
type DetailFetcher interface {
	FetchAll(ctx context.Context, key string, yearID int) (*schools.Payload, error)
}

// StatisticsService is the statistics service as seen by the detail engine.
type StatisticsService interface {
	KeyResolver
	YearResolver
	DetailFetcher
}

// TicketReconciler resolves data requests once their region has been synced.
type TicketReconciler interface {
	// ResolveAfterSync logs and swallows its own failures.
	ResolveAfterSync(ctx context.Context, region schools.Region)
}
