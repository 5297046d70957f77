package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/schoolgis/schoolsync/internal/db/pgtypes"
	"github.com/schoolgis/schoolsync/internal/db/sqlc"
	"github.com/schoolgis/schoolsync/internal/otel"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

func (s *dbStore) StartRun(ctx context.Context, kind store.RunKind, region schools.Region, yearLabel string) (uuid.UUID, error) {
	ctx, span := s.startSpan(ctx, "dbStore.StartRun", otel.WithRegion(region.StateCode, region.DistrictCode))
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		recordError(span, err)
		return uuid.Nil, fmt.Errorf("failed to generate run id: %w", err)
	}

	err = s.queries.InsertSyncRun(ctx, sqlc.InsertSyncRunParams{
		ID:           pgtypes.UUID(id),
		Kind:         sqlc.SyncRunKind(kind),
		StateCode:    region.StateCode,
		DistrictCode: region.DistrictCode,
		YearDesc:     pgtypes.NonEmptyText(yearLabel),
	})
	if err != nil {
		recordError(span, err)
		return uuid.Nil, fmt.Errorf("failed to start sync run: %w", err)
	}
	return id, nil
}

func (s *dbStore) FinishRun(ctx context.Context, id uuid.UUID, outcome store.RunOutcome) error {
	ctx, span := s.startSpan(ctx, "dbStore.FinishRun")
	defer span.End()

	err := s.queries.FinishSyncRun(ctx, sqlc.FinishSyncRunParams{
		Status:    sqlc.SyncRunStatus(outcome.Status),
		YearDesc:  pgtypes.NonEmptyText(outcome.YearLabel),
		Added:     clampInt32(outcome.Added),
		Processed: clampInt32(outcome.Processed),
		Skipped:   clampInt32(outcome.Skipped),
		Failed:    clampInt32(outcome.Failed),
		Message:   pgtypes.NonEmptyText(outcome.Message),
		ID:        pgtypes.UUID(id),
	})
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to finish sync run %s: %w", id, err)
	}
	return nil
}

func (s *dbStore) GetRun(ctx context.Context, id uuid.UUID) (*store.SyncRun, error) {
	ctx, span := s.startSpan(ctx, "dbStore.GetRun")
	defer span.End()

	row, err := s.queries.GetSyncRun(ctx, pgtypes.UUID(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("sync run %s: %w", id, store.ErrNotFound)
		}
		recordError(span, err)
		return nil, fmt.Errorf("failed to get sync run %s: %w", id, err)
	}

	return &store.SyncRun{
		ID:         pgtypes.FromUUID(row.ID),
		Kind:       store.RunKind(row.Kind),
		Region:     schools.Region{StateCode: row.StateCode, DistrictCode: row.DistrictCode},
		YearLabel:  row.YearDesc.String,
		Status:     store.RunStatus(row.Status),
		Added:      int(row.Added),
		Processed:  int(row.Processed),
		Skipped:    int(row.Skipped),
		Failed:     int(row.Failed),
		Message:    row.Message.String,
		StartedAt:  pgtypes.Time(row.StartedAt),
		FinishedAt: pgtypes.TimePtr(row.FinishedAt),
	}, nil
}

func clampInt32(n int) int32 {
	const maxInt32 = 1<<31 - 1
	if n > maxInt32 {
		return maxInt32
	}
	if n < 0 {
		return 0
	}
	return int32(n) //nolint:gosec // bounded above
}
