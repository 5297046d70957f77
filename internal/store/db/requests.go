package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/schoolgis/schoolsync/internal/db/pgtypes"
	"github.com/schoolgis/schoolsync/internal/db/sqlc"
	"github.com/schoolgis/schoolsync/internal/otel"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

func (s *dbStore) CreateRequest(ctx context.Context, userID, stateCode string, districtCodes []string) (int64, error) {
	ctx, span := s.startSpan(ctx, "dbStore.CreateRequest", trace.WithAttributes(otel.AttrStateCode.String(stateCode)))
	defer span.End()

	if districtCodes == nil {
		districtCodes = []string{}
	}
	id, err := s.queries.InsertDataRequest(ctx, sqlc.InsertDataRequestParams{
		UserID:        pgtypes.NonEmptyText(userID),
		StateCode:     stateCode,
		DistrictCodes: districtCodes,
	})
	if err != nil {
		recordError(span, err)
		return 0, fmt.Errorf("failed to create data request: %w", err)
	}
	return id, nil
}

func (s *dbStore) FindOverlappingPending(ctx context.Context, region schools.Region) ([]store.DataRequest, error) {
	ctx, span := s.startSpan(ctx, "dbStore.FindOverlappingPending", otel.WithRegion(region.StateCode, region.DistrictCode))
	defer span.End()

	rows, err := s.queries.ListOverlappingPendingRequests(ctx, sqlc.ListOverlappingPendingRequestsParams{
		StateCode:     region.StateCode,
		DistrictCodes: []string{region.DistrictCode},
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list pending data requests: %w", err)
	}

	out := make([]store.DataRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, requestFromRow(row))
	}
	return out, nil
}

func (s *dbStore) MarkResolved(ctx context.Context, ids []int64) ([]int64, error) {
	ctx, span := s.startSpan(ctx, "dbStore.MarkResolved", trace.WithAttributes(otel.AttrBatchSize.Int(len(ids))))
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.queries.MarkDataRequestsResolved(ctx, ids)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to resolve data requests: %w", err)
	}

	resolved := make([]int64, 0, len(rows))
	for _, row := range rows {
		resolved = append(resolved, row.ID)
	}
	return resolved, nil
}

func (s *dbStore) GetRequest(ctx context.Context, id int64) (*store.DataRequest, error) {
	ctx, span := s.startSpan(ctx, "dbStore.GetRequest")
	defer span.End()

	row, err := s.queries.GetDataRequest(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("data request %d: %w", id, store.ErrNotFound)
		}
		recordError(span, err)
		return nil, fmt.Errorf("failed to get data request %d: %w", id, err)
	}
	req := requestFromRow(row)
	return &req, nil
}

func requestFromRow(row sqlc.DataRequest) store.DataRequest {
	return store.DataRequest{
		ID:            row.ID,
		UserID:        row.UserID.String,
		StateCode:     row.StateCode,
		DistrictCodes: row.DistrictCodes,
		Status:        store.RequestStatus(row.Status),
		CreatedAt:     pgtypes.Time(row.CreatedAt),
		ResolvedAt:    pgtypes.TimePtr(row.ResolvedAt),
	}
}
