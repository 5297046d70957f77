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

func (s *dbStore) ListObjectIDs(ctx context.Context, region schools.Region) ([]string, error) {
	ctx, span := s.startSpan(ctx, "dbStore.ListObjectIDs", otel.WithRegion(region.StateCode, region.DistrictCode))
	defer span.End()

	ids, err := s.queries.ListMasterObjectIDs(ctx, sqlc.ListMasterObjectIDsParams{
		StateCode:    region.StateCode,
		DistrictCode: region.DistrictCode,
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list master object ids: %w", err)
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(ids)))
	return ids, nil
}

// ImportMasterObjects upserts every object in one transaction and returns the rows written.
func (s *dbStore) ImportMasterObjects(ctx context.Context, objects []schools.MasterObjectID) (int64, error) {
	ctx, span := s.startSpan(ctx, "dbStore.ImportMasterObjects",
		trace.WithAttributes(otel.AttrBatchSize.Int(len(objects))))
	defer span.End()

	if len(objects) == 0 {
		return 0, nil
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		recordError(span, err)
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			span.RecordError(err)
		}
	}()

	querier := s.queries.WithTx(tx)
	var written int64
	for _, obj := range objects {
		n, err := querier.UpsertMasterObject(ctx, sqlc.UpsertMasterObjectParams{
			ObjectID:     obj.ObjectID,
			StateCode:    obj.StateCode,
			DistrictCode: obj.DistrictCode,
		})
		if err != nil {
			recordError(span, err)
			return 0, fmt.Errorf("failed to upsert master object %s: %w", obj.ObjectID, err)
		}
		written += n
	}

	if err := tx.Commit(ctx); err != nil {
		recordError(span, err)
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return written, nil
}

func (s *dbStore) KnownObjectIDs(ctx context.Context, region schools.Region) ([]string, error) {
	ctx, span := s.startSpan(ctx, "dbStore.KnownObjectIDs", otel.WithRegion(region.StateCode, region.DistrictCode))
	defer span.End()

	ids, err := s.queries.ListKnownObjectIDs(ctx, sqlc.ListKnownObjectIDsParams{
		StateCode:    region.StateCode,
		DistrictCode: region.DistrictCode,
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list known object ids: %w", err)
	}
	return ids, nil
}

func (s *dbStore) UpsertEntry(ctx context.Context, entry schools.DirectoryEntry) (bool, error) {
	ctx, span := s.startSpan(ctx, "dbStore.UpsertEntry",
		trace.WithAttributes(otel.AttrIdentifier.String(entry.Identifier)))
	defer span.End()

	inserted, err := s.queries.UpsertDirectoryEntry(ctx, sqlc.UpsertDirectoryEntryParams{
		UdiseCode:    entry.Identifier,
		ObjectID:     entry.ObjectID,
		Latitude:     pgtypes.Float8(entry.Latitude),
		Longitude:    pgtypes.Float8(entry.Longitude),
		Pincode:      pgtypes.NonEmptyText(entry.Pincode),
		StateName:    pgtypes.NonEmptyText(entry.StateName),
		DistrictName: pgtypes.NonEmptyText(entry.DistrictName),
		StateCode:    entry.StateCode,
		DistrictCode: entry.DistrictCode,
	})
	if err != nil {
		recordError(span, err)
		return false, fmt.Errorf("failed to upsert directory entry %s: %w", entry.Identifier, err)
	}
	return inserted, nil
}

func (s *dbStore) ListIdentifiers(ctx context.Context, region schools.Region) ([]string, error) {
	ctx, span := s.startSpan(ctx, "dbStore.ListIdentifiers", otel.WithRegion(region.StateCode, region.DistrictCode))
	defer span.End()

	ids, err := s.queries.ListDirectoryIdentifiers(ctx, sqlc.ListDirectoryIdentifiersParams{
		StateCode:    region.StateCode,
		DistrictCode: region.DistrictCode,
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list identifiers: %w", err)
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(ids)))
	return ids, nil
}

func (s *dbStore) GetEntry(ctx context.Context, identifier string) (*schools.DirectoryEntry, error) {
	ctx, span := s.startSpan(ctx, "dbStore.GetEntry",
		trace.WithAttributes(otel.AttrIdentifier.String(identifier)))
	defer span.End()

	row, err := s.queries.GetDirectoryEntry(ctx, identifier)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("directory entry %s: %w", identifier, store.ErrNotFound)
		}
		recordError(span, err)
		return nil, fmt.Errorf("failed to get directory entry %s: %w", identifier, err)
	}

	return &schools.DirectoryEntry{
		Identifier:   row.UdiseCode,
		ObjectID:     row.ObjectID,
		Latitude:     pgtypes.Float64Ptr(row.Latitude),
		Longitude:    pgtypes.Float64Ptr(row.Longitude),
		Pincode:      row.Pincode.String,
		StateName:    row.StateName.String,
		DistrictName: row.DistrictName.String,
		StateCode:    row.StateCode,
		DistrictCode: row.DistrictCode,
	}, nil
}
