package sync

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/schoolgis/schoolsync/internal/store"
)

// runRecord is a started SyncRun. A nil runRecord ignores every call.
type runRecord struct {
	runs store.RunStore
	id   uuid.UUID
}

// ID returns the run id, or uuid.Nil when the run is not recorded.
func (r *runRecord) ID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.id
}

// finish stores outcome. It runs on a detached context so a cancelled sync still closes its run.
func (r *runRecord) finish(ctx context.Context, outcome store.RunOutcome) {
	if r == nil {
		return
	}
	if err := r.runs.FinishRun(context.WithoutCancel(ctx), r.id, outcome); err != nil {
		slog.WarnContext(ctx, "Failed to finish sync run", "run_id", r.id.String(), "error", err)
	}
}
