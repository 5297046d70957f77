package app

import (
	"github.com/schoolgis/schoolsync/internal/store"
	pkgsync "github.com/schoolgis/schoolsync/internal/sync"
	"github.com/schoolgis/schoolsync/internal/sync/coordinator"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// SyncCoordinator runs the configured regions on a schedule
	SyncCoordinator coordinator.Coordinator

	// SyncManager runs the directory and detail phases
	SyncManager pkgsync.Manager

	// Store is the persistence behind the pipeline and the operations API
	Store store.Store
}
