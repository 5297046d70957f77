// Package storage creates the stateful backends of the pipeline as a family:
// the store and the region locker, together with the connections behind them.
package storage

import (
	"context"
	"fmt"

	"github.com/schoolgis/schoolsync/internal/config"
	"github.com/schoolgis/schoolsync/internal/lock"
	"github.com/schoolgis/schoolsync/internal/store"
)

//go:generate mockgen -destination=mocks/mock_factory.go -package=mocks -source=factory.go Factory

// Factory creates storage-dependent components.
//
// It also manages the lifecycle of the connections behind them.
// Cleanup should be called when the application shuts down.
type Factory interface {
	// CreateStore returns the store. Repeated calls return the same store.
	CreateStore(ctx context.Context) (store.Store, error)

	// CreateLocker returns the region locker, a no-op locker when Redis is not configured.
	CreateLocker(ctx context.Context) (lock.Locker, error)

	// Cleanup releases every connection held by the factory.
	Cleanup()
}

// NewStorageFactory creates the PostgreSQL-backed factory described by cfg.
func NewStorageFactory(ctx context.Context, cfg *config.Config, opts ...DatabaseFactoryOption) (Factory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return NewDatabaseFactory(ctx, cfg, opts...)
}
