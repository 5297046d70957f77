package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/schoolgis/schoolsync/internal/db/pgtypes"
	"github.com/schoolgis/schoolsync/internal/db/sqlc"
	"github.com/schoolgis/schoolsync/internal/otel"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

func (s *dbStore) Exists(ctx context.Context, identifier, yearLabel string) (store.Presence, error) {
	ctx, span := s.startSpan(ctx, "dbStore.Exists", trace.WithAttributes(
		otel.AttrIdentifier.String(identifier),
		otel.AttrYearLabel.String(yearLabel),
	))
	defer span.End()

	name, err := s.queries.GetSchoolDetailName(ctx, sqlc.GetSchoolDetailNameParams{
		UdiseCode: identifier,
		YearDesc:  yearLabel,
	})
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return store.PresenceAbsent, nil
	case err != nil:
		recordError(span, err)
		return store.PresenceAbsent, fmt.Errorf("failed to check detail %s/%s: %w", identifier, yearLabel, err)
	case name.Valid && strings.TrimSpace(name.String) != "":
		return store.PresenceComplete, nil
	default:
		return store.PresenceIncomplete, nil
	}
}

func (s *dbStore) Upsert(ctx context.Context, rec *schools.DetailRecord) error {
	ctx, span := s.startSpan(ctx, "dbStore.Upsert", trace.WithAttributes(
		otel.AttrIdentifier.String(rec.Identifier),
		otel.AttrYearLabel.String(rec.YearLabel),
	))
	defer span.End()

	if err := s.queries.UpsertSchoolDetail(ctx, upsertParams(rec)); err != nil {
		recordError(span, err)
		return fmt.Errorf("failed to upsert detail %s/%s: %w", rec.Identifier, rec.YearLabel, err)
	}
	return nil
}

func (s *dbStore) Get(ctx context.Context, identifier, yearLabel string) (*schools.DetailRecord, error) {
	ctx, span := s.startSpan(ctx, "dbStore.Get", trace.WithAttributes(
		otel.AttrIdentifier.String(identifier),
		otel.AttrYearLabel.String(yearLabel),
	))
	defer span.End()

	row, err := s.queries.GetSchoolDetail(ctx, sqlc.GetSchoolDetailParams{
		UdiseCode: identifier,
		YearDesc:  yearLabel,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("detail %s/%s: %w", identifier, yearLabel, store.ErrNotFound)
		}
		recordError(span, err)
		return nil, fmt.Errorf("failed to get detail %s/%s: %w", identifier, yearLabel, err)
	}
	return detailFromRow(row), nil
}

func upsertParams(rec *schools.DetailRecord) sqlc.UpsertSchoolDetailParams {
	return sqlc.UpsertSchoolDetailParams{
		UdiseCode:                    rec.Identifier,
		YearDesc:                     rec.YearLabel,
		SchoolID:                     rec.Key,
		SchoolName:                   pgtypes.Text(rec.SchoolName),
		StateName:                    pgtypes.Text(rec.StateName),
		DistrictName:                 pgtypes.Text(rec.DistrictName),
		BlockName:                    pgtypes.Text(rec.BlockName),
		VillageWardName:              pgtypes.Text(rec.VillageWardName),
		ClusterName:                  pgtypes.Text(rec.ClusterName),
		HeadMasterName:               pgtypes.Text(rec.HeadMasterName),
		SchoolStatus:                 pgtypes.Text(rec.SchoolStatus),
		SchoolType:                   pgtypes.Text(rec.SchoolType),
		MediumOfInstruction1:         pgtypes.Text(rec.MediumOfInstruction1),
		MediumOfInstruction2:         pgtypes.Text(rec.MediumOfInstruction2),
		IsMinoritySchool:             rec.IsMinoritySchool,
		HasAnganwadi:                 rec.HasAnganwadi,
		AnganwadiBoyStudents:         rec.AnganwadiBoyStudents,
		AnganwadiGirlStudents:        rec.AnganwadiGirlStudents,
		IsCceImplemented:             rec.IsCCEImplemented,
		HasSchoolManagementCommittee: rec.HasSchoolManagementCommittee,
		HasApproachRoad:              rec.HasApproachRoad,
		IsShiftSchool:                rec.IsShiftSchool,
		BuildingStatus:               pgtypes.Text(rec.BuildingStatus),
		TotalClassroomsInUse:         rec.TotalClassroomsInUse,
		GoodConditionClassrooms:      rec.GoodConditionClassrooms,
		TotalToiletsBoys:             rec.TotalToiletsBoys,
		TotalToiletsGirls:            rec.TotalToiletsGirls,
		HasDrinkingWaterFacility:     rec.HasDrinkingWaterFacility,
		HasElectricity:               rec.HasElectricity,
		HasLibrary:                   rec.HasLibrary,
		HasPlayground:                rec.HasPlayground,
		HasMedicalCheckup:            rec.HasMedicalCheckup,
		HasIntegratedLab:             rec.HasIntegratedLab,
		HasInternet:                  rec.HasInternet,
		TotalTeachers:                rec.TotalTeachers,
		TotalMaleTeachers:            rec.TotalMaleTeachers,
		TotalFemaleTeachers:          rec.TotalFemaleTeachers,
		TotalRegularTeachers:         rec.TotalRegularTeachers,
		TotalContractTeachers:        rec.TotalContractTeachers,
		LowestClass:                  pgtypes.Int4(rec.LowestClass),
		HighestClass:                 pgtypes.Int4(rec.HighestClass),
		TotalBoyStudents:             rec.TotalBoyStudents,
		TotalGirlStudents:            rec.TotalGirlStudents,
		TotalStudents:                rec.TotalStudents,
		SocialDataGeneralScStObc:     pgtypes.JSONArray(rec.SocialGeneralCaste),
		SocialDataReligion:           pgtypes.JSONArray(rec.SocialReligion),
		SocialDataCwsn:               pgtypes.JSONArray(rec.SocialCWSN),
		SocialDataRte:                pgtypes.JSONArray(rec.SocialRTE),
		SocialDataEws:                pgtypes.JSONArray(rec.SocialEWS),
	}
}

func detailFromRow(row sqlc.SchoolDetail) *schools.DetailRecord {
	return &schools.DetailRecord{
		Identifier:                   row.UdiseCode,
		YearLabel:                    row.YearDesc,
		Key:                          row.SchoolID,
		SchoolName:                   pgtypes.StringPtr(row.SchoolName),
		StateName:                    pgtypes.StringPtr(row.StateName),
		DistrictName:                 pgtypes.StringPtr(row.DistrictName),
		BlockName:                    pgtypes.StringPtr(row.BlockName),
		VillageWardName:              pgtypes.StringPtr(row.VillageWardName),
		ClusterName:                  pgtypes.StringPtr(row.ClusterName),
		HeadMasterName:               pgtypes.StringPtr(row.HeadMasterName),
		SchoolStatus:                 pgtypes.StringPtr(row.SchoolStatus),
		SchoolType:                   pgtypes.StringPtr(row.SchoolType),
		MediumOfInstruction1:         pgtypes.StringPtr(row.MediumOfInstruction1),
		MediumOfInstruction2:         pgtypes.StringPtr(row.MediumOfInstruction2),
		IsMinoritySchool:             row.IsMinoritySchool,
		HasAnganwadi:                 row.HasAnganwadi,
		AnganwadiBoyStudents:         row.AnganwadiBoyStudents,
		AnganwadiGirlStudents:        row.AnganwadiGirlStudents,
		IsCCEImplemented:             row.IsCceImplemented,
		HasSchoolManagementCommittee: row.HasSchoolManagementCommittee,
		HasApproachRoad:              row.HasApproachRoad,
		IsShiftSchool:                row.IsShiftSchool,
		BuildingStatus:               pgtypes.StringPtr(row.BuildingStatus),
		TotalClassroomsInUse:         row.TotalClassroomsInUse,
		GoodConditionClassrooms:      row.GoodConditionClassrooms,
		TotalToiletsBoys:             row.TotalToiletsBoys,
		TotalToiletsGirls:            row.TotalToiletsGirls,
		HasDrinkingWaterFacility:     row.HasDrinkingWaterFacility,
		HasElectricity:               row.HasElectricity,
		HasLibrary:                   row.HasLibrary,
		HasPlayground:                row.HasPlayground,
		HasMedicalCheckup:            row.HasMedicalCheckup,
		HasIntegratedLab:             row.HasIntegratedLab,
		HasInternet:                  row.HasInternet,
		TotalTeachers:                row.TotalTeachers,
		TotalMaleTeachers:            row.TotalMaleTeachers,
		TotalFemaleTeachers:          row.TotalFemaleTeachers,
		TotalRegularTeachers:         row.TotalRegularTeachers,
		TotalContractTeachers:        row.TotalContractTeachers,
		LowestClass:                  pgtypes.Int32Ptr(row.LowestClass),
		HighestClass:                 pgtypes.Int32Ptr(row.HighestClass),
		TotalBoyStudents:             row.TotalBoyStudents,
		TotalGirlStudents:            row.TotalGirlStudents,
		TotalStudents:                row.TotalStudents,
		SocialGeneralCaste:           row.SocialDataGeneralScStObc,
		SocialReligion:               row.SocialDataReligion,
		SocialCWSN:                   row.SocialDataCwsn,
		SocialRTE:                    row.SocialDataRte,
		SocialEWS:                    row.SocialDataEws,
		CreatedAt:                    pgtypes.Time(row.CreatedAt),
		UpdatedAt:                    pgtypes.Time(row.UpdatedAt),
	}
}
