package db

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolgis/schoolsync/database"
	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

func setupStore(t *testing.T) store.Store {
	t.Helper()

	pool, cleanup := database.SetupTestDB(t)
	t.Cleanup(cleanup)

	s, err := New(WithConnectionPool(pool))
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }

func TestNewRequiresPool(t *testing.T) {
	t.Parallel()

	_, err := New()
	require.Error(t, err)

	_, err = New(WithConnectionPool(nil))
	require.Error(t, err)
}

func TestDirectory(t *testing.T) {
	t.Parallel()

	s := setupStore(t)
	ctx := context.Background()
	region := schools.NewRegion("09", "0901")
	other := schools.NewRegion("09", "0902")

	n, err := s.ImportMasterObjects(ctx, []schools.MasterObjectID{
		{ObjectID: "3", StateCode: "09", DistrictCode: "0901"},
		{ObjectID: "1", StateCode: "09", DistrictCode: "0901"},
		{ObjectID: "7", StateCode: "09", DistrictCode: "0902"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	ids, err := s.ListObjectIDs(ctx, region)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "3"}, ids)

	lat := 26.8
	entry := schools.DirectoryEntry{
		Identifier: "09010100101", ObjectID: "1", Latitude: &lat,
		Pincode: "226001", StateName: "UTTAR PRADESH", DistrictName: "LUCKNOW",
		StateCode: "09", DistrictCode: "0901",
	}
	inserted, err := s.UpsertEntry(ctx, entry)
	require.NoError(t, err)
	assert.True(t, inserted)

	entry.Pincode = "226002"
	inserted, err = s.UpsertEntry(ctx, entry)
	require.NoError(t, err)
	assert.False(t, inserted, "second upsert of the same identifier is an update")

	got, err := s.GetEntry(ctx, "09010100101")
	require.NoError(t, err)
	assert.Equal(t, "226002", got.Pincode)
	require.NotNil(t, got.Latitude)
	assert.InDelta(t, lat, *got.Latitude, 1e-9)
	assert.Nil(t, got.Longitude)

	known, err := s.KnownObjectIDs(ctx, region)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, known)

	idents, err := s.ListIdentifiers(ctx, region)
	require.NoError(t, err)
	assert.Equal(t, []string{"09010100101"}, idents)

	idents, err = s.ListIdentifiers(ctx, other)
	require.NoError(t, err)
	assert.Empty(t, idents)

	_, err = s.GetEntry(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDetails(t *testing.T) {
	t.Parallel()

	s := setupStore(t)
	ctx := context.Background()

	presence, err := s.Exists(ctx, "09010100101", "2023-24")
	require.NoError(t, err)
	assert.Equal(t, store.PresenceAbsent, presence)

	low := int32(1)
	rec := &schools.DetailRecord{
		Identifier:         "09010100101",
		YearLabel:          "2023-24",
		Key:                "1001",
		SchoolName:         strPtr(""),
		LowestClass:        &low,
		TotalStudents:      120,
		HasLibrary:         true,
		SocialGeneralCaste: json.RawMessage(`[{"caste":"SC","count":4}]`),
	}
	require.NoError(t, s.Upsert(ctx, rec))

	presence, err = s.Exists(ctx, "09010100101", "2023-24")
	require.NoError(t, err)
	assert.Equal(t, store.PresenceIncomplete, presence)

	rec.SchoolName = strPtr("GPS RAMPUR")
	rec.TotalStudents = 130
	require.NoError(t, s.Upsert(ctx, rec))

	presence, err = s.Exists(ctx, "09010100101", "2023-24")
	require.NoError(t, err)
	assert.Equal(t, store.PresenceComplete, presence)

	got, err := s.Get(ctx, "09010100101", "2023-24")
	require.NoError(t, err)
	assert.Equal(t, "GPS RAMPUR", *got.SchoolName)
	assert.Equal(t, int32(130), got.TotalStudents)
	assert.True(t, got.HasLibrary)
	require.NotNil(t, got.LowestClass)
	assert.Equal(t, int32(1), *got.LowestClass)
	assert.Nil(t, got.HighestClass)
	assert.JSONEq(t, `[{"caste":"SC","count":4}]`, string(got.SocialGeneralCaste))
	assert.JSONEq(t, `[]`, string(got.SocialEWS))
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	// a second year is a separate row
	rec.YearLabel = "2022-23"
	require.NoError(t, s.Upsert(ctx, rec))
	_, err = s.Get(ctx, "09010100101", "2022-23")
	require.NoError(t, err)

	_, err = s.Get(ctx, "09010100101", "2019-20")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSkipLedger(t *testing.T) {
	t.Parallel()

	s := setupStore(t)
	ctx := context.Background()
	lucknow := schools.NewRegion("09", "0901")
	agra := schools.NewRegion("09", "0915")

	require.NoError(t, s.Record(ctx, "A", lucknow, "2023-24", "Key Not Found"))
	require.NoError(t, s.Record(ctx, "A", lucknow, "2022-23", "Key Not Found"))
	require.NoError(t, s.Record(ctx, "B", lucknow, "2023-24", "API Returned Empty"))
	require.NoError(t, s.Record(ctx, "C", agra, "2023-24", "Key Not Found"))

	// same key overwrites the reason
	require.NoError(t, s.Record(ctx, "B", lucknow, "2023-24", "Error: timeout"))

	page, err := s.List(ctx, store.SkipFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, store.DefaultPageSize, page.Limit)
	require.Len(t, page.Records, 4)
	assert.Equal(t, "B", page.Records[0].Identifier, "newest first")
	assert.Equal(t, "Error: timeout", page.Records[0].Reason)

	page, err = s.List(ctx, store.SkipFilter{StateCode: "09", DistrictCode: "0915"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "C", page.Records[0].Identifier)

	page, err = s.List(ctx, store.SkipFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Len(t, page.Records, 1)

	summary, err := s.Summary(ctx)
	require.NoError(t, err)
	counts := map[string]int64{}
	for _, row := range summary {
		counts[row.DistrictCode+"|"+row.YearLabel+"|"+row.Reason] = row.Count
	}
	assert.Equal(t, map[string]int64{
		"0901|2023-24|Key Not Found":  1,
		"0901|2022-23|Key Not Found":  1,
		"0901|2023-24|Error: timeout": 1,
		"0915|2023-24|Key Not Found":  1,
	}, counts)

	require.NoError(t, s.Clear(ctx, "A"))
	page, err = s.List(ctx, store.SkipFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total, "clear removes every year of the identifier")

	// a record without a region keeps the codes already stored
	require.NoError(t, s.Record(ctx, "C", schools.Region{}, "2023-24", "API Returned Empty"))
	page, err = s.List(ctx, store.SkipFilter{StateCode: "09", DistrictCode: "0915"})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "C", page.Records[0].Identifier)
	assert.Equal(t, "API Returned Empty", page.Records[0].Reason)

	require.NoError(t, s.Clear(ctx, "never-recorded"))
}

func TestDataRequests(t *testing.T) {
	t.Parallel()

	s := setupStore(t)
	ctx := context.Background()

	matching, err := s.CreateRequest(ctx, "user-1", "09", []string{"0901", "0902"})
	require.NoError(t, err)
	otherDistrict, err := s.CreateRequest(ctx, "", "09", []string{"0915"})
	require.NoError(t, err)
	otherState, err := s.CreateRequest(ctx, "user-2", "10", []string{"0901"})
	require.NoError(t, err)

	pending, err := s.FindOverlappingPending(ctx, schools.NewRegion("09", "0901"))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, matching, pending[0].ID)
	assert.Equal(t, "user-1", pending[0].UserID)

	resolved, err := s.MarkResolved(ctx, []int64{matching})
	require.NoError(t, err)
	assert.Equal(t, []int64{matching}, resolved)

	resolved, err = s.MarkResolved(ctx, []int64{matching})
	require.NoError(t, err)
	assert.Empty(t, resolved, "already resolved requests are not changed again")

	req, err := s.GetRequest(ctx, matching)
	require.NoError(t, err)
	assert.Equal(t, store.RequestResolved, req.Status)
	require.NotNil(t, req.ResolvedAt)

	for _, id := range []int64{otherDistrict, otherState} {
		req, err := s.GetRequest(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, store.RequestPending, req.Status)
		assert.Nil(t, req.ResolvedAt)
	}

	_, err = s.GetRequest(ctx, 999999)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestRuns(t *testing.T) {
	t.Parallel()

	s := setupStore(t)
	ctx := context.Background()
	region := schools.NewRegion("09", "0901")

	id, err := s.StartRun(ctx, store.RunKindDetail, region, "")
	require.NoError(t, err)

	run, err := s.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.RunRunning, run.Status)
	assert.Equal(t, store.RunKindDetail, run.Kind)
	assert.Nil(t, run.FinishedAt)

	require.NoError(t, s.FinishRun(ctx, id, store.RunOutcome{
		Status:    store.RunCompleted,
		YearLabel: "2023-24",
		Processed: 20,
		Skipped:   2,
		Failed:    1,
	}))

	run, err = s.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.RunCompleted, run.Status)
	assert.Equal(t, "2023-24", run.YearLabel)
	assert.Equal(t, 20, run.Processed)
	assert.Equal(t, region, run.Region)
	require.NotNil(t, run.FinishedAt)
	assert.WithinDuration(t, time.Now(), *run.FinishedAt, time.Minute)

	_, err = s.GetRun(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestPing(t *testing.T) {
	t.Parallel()

	s := setupStore(t)
	require.NoError(t, s.Ping(context.Background()))
}
