package storage

import (
	"context"

	"github.com/schoolgis/schoolsync/internal/lock"
	"github.com/schoolgis/schoolsync/internal/store"
	"github.com/schoolgis/schoolsync/internal/store/memory"
)

// MemoryFactory keeps everything in process. Nothing survives a restart.
type MemoryFactory struct {
	store store.Store
}

var _ Factory = (*MemoryFactory)(nil)

// NewMemoryFactory creates a factory over a fresh in-memory store.
func NewMemoryFactory() *MemoryFactory {
	return &MemoryFactory{store: memory.New()}
}

// CreateStore returns the in-memory store.
func (m *MemoryFactory) CreateStore(context.Context) (store.Store, error) {
	return m.store, nil
}

// CreateLocker returns a no-op locker.
func (*MemoryFactory) CreateLocker(context.Context) (lock.Locker, error) {
	return lock.Noop(), nil
}

// Cleanup is a no-op.
func (*MemoryFactory) Cleanup() {}
