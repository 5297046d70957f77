package db

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"github.com/schoolgis/schoolsync/internal/db/pgtypes"
	"github.com/schoolgis/schoolsync/internal/db/sqlc"
	"github.com/schoolgis/schoolsync/internal/otel"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

func (s *dbStore) Record(ctx context.Context, identifier string, region schools.Region, yearLabel, reason string) error {
	ctx, span := s.startSpan(ctx, "dbStore.Record", trace.WithAttributes(
		otel.AttrIdentifier.String(identifier),
		otel.AttrYearLabel.String(yearLabel),
	))
	defer span.End()

	err := s.queries.UpsertSkippedSchool(ctx, sqlc.UpsertSkippedSchoolParams{
		UdiseCode:    identifier,
		YearDesc:     yearLabel,
		StateCode:    region.StateCode,
		DistrictCode: region.DistrictCode,
		Reason:       reason,
	})
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to record skip for %s: %w", identifier, err)
	}
	return nil
}

func (s *dbStore) Clear(ctx context.Context, identifier string) error {
	ctx, span := s.startSpan(ctx, "dbStore.Clear", trace.WithAttributes(otel.AttrIdentifier.String(identifier)))
	defer span.End()

	n, err := s.queries.DeleteSkippedSchools(ctx, identifier)
	if err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to clear skips for %s: %w", identifier, err)
	}
	span.SetAttributes(otel.AttrResultCount.Int64(n))
	return nil
}

func (s *dbStore) List(ctx context.Context, filter store.SkipFilter) (*store.SkipPage, error) {
	filter = filter.Normalize()
	ctx, span := s.startSpan(ctx, "dbStore.List", trace.WithAttributes(otel.AttrPageSize.Int(filter.Limit)))
	defer span.End()

	state := pgtypes.NonEmptyText(filter.StateCode)
	district := pgtypes.NonEmptyText(filter.DistrictCode)

	total, err := s.queries.CountSkippedSchools(ctx, sqlc.CountSkippedSchoolsParams{
		StateCode:    state,
		DistrictCode: district,
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to count skipped schools: %w", err)
	}

	rows, err := s.queries.ListSkippedSchools(ctx, sqlc.ListSkippedSchoolsParams{
		StateCode:    state,
		DistrictCode: district,
		Skip:         int32(filter.Offset()), //nolint:gosec // page and limit are clamped by Normalize
		Size:         int32(filter.Limit),    //nolint:gosec // clamped to MaxPageSize
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list skipped schools: %w", err)
	}

	records := make([]store.SkipRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, store.SkipRecord{
			Identifier:   row.UdiseCode,
			YearLabel:    row.YearDesc,
			StateCode:    row.StateCode,
			DistrictCode: row.DistrictCode,
			Reason:       row.Reason,
			CreatedAt:    pgtypes.Time(row.CreatedAt),
		})
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(records)))

	return &store.SkipPage{
		Records: records,
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

func (s *dbStore) Summary(ctx context.Context) ([]store.SkipSummary, error) {
	ctx, span := s.startSpan(ctx, "dbStore.Summary")
	defer span.End()

	rows, err := s.queries.SummarizeSkippedSchools(ctx)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to summarize skipped schools: %w", err)
	}

	out := make([]store.SkipSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, store.SkipSummary{
			StateCode:    row.StateCode,
			DistrictCode: row.DistrictCode,
			YearLabel:    row.YearDesc,
			Reason:       row.Reason,
			Count:        row.Total,
		})
	}
	return out, nil
}
