package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/store"
)

// stepClock returns a clock advancing one second per call.
func stepClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestDirectory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()
	region := schools.NewRegion("09", "0901")

	_, err := s.ImportMasterObjects(ctx, []schools.MasterObjectID{
		{ObjectID: "2", StateCode: "09", DistrictCode: "0901"},
		{ObjectID: "1", StateCode: "09", DistrictCode: "0901"},
		{ObjectID: "9", StateCode: "09", DistrictCode: "0902"},
	})
	require.NoError(t, err)

	ids, err := s.ListObjectIDs(ctx, region)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids)

	entry := schools.DirectoryEntry{Identifier: "X1", ObjectID: "1", StateCode: "09", DistrictCode: "0901"}
	inserted, err := s.UpsertEntry(ctx, entry)
	require.NoError(t, err)
	assert.True(t, inserted)

	entry.Pincode = "226001"
	entry.DistrictCode = "0999"
	inserted, err = s.UpsertEntry(ctx, entry)
	require.NoError(t, err)
	assert.False(t, inserted)

	got, err := s.GetEntry(ctx, "X1")
	require.NoError(t, err)
	assert.Equal(t, "226001", got.Pincode)
	assert.Equal(t, "0901", got.DistrictCode, "region of an existing entry is kept")

	known, err := s.KnownObjectIDs(ctx, region)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, known)

	_, err = s.UpsertEntry(ctx, schools.DirectoryEntry{})
	require.Error(t, err)

	_, err = s.GetEntry(ctx, "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDetails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(WithClock(stepClock()))

	p, err := s.Exists(ctx, "X1", "2023-24")
	require.NoError(t, err)
	assert.Equal(t, store.PresenceAbsent, p)

	blank := "  "
	require.NoError(t, s.Upsert(ctx, &schools.DetailRecord{Identifier: "X1", YearLabel: "2023-24", SchoolName: &blank}))
	p, err = s.Exists(ctx, "X1", "2023-24")
	require.NoError(t, err)
	assert.Equal(t, store.PresenceIncomplete, p)

	name := "GPS"
	require.NoError(t, s.Upsert(ctx, &schools.DetailRecord{Identifier: "X1", YearLabel: "2023-24", SchoolName: &name}))
	p, err = s.Exists(ctx, "X1", "2023-24")
	require.NoError(t, err)
	assert.Equal(t, store.PresenceComplete, p)

	rec, err := s.Get(ctx, "X1", "2023-24")
	require.NoError(t, err)
	assert.True(t, rec.UpdatedAt.After(rec.CreatedAt), "second upsert keeps created_at")

	require.Error(t, s.Upsert(ctx, &schools.DetailRecord{Identifier: "X1"}))
}

func TestSkipLedger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New(WithClock(stepClock()))
	r1 := schools.NewRegion("09", "0901")
	r2 := schools.NewRegion("09", "0902")

	require.NoError(t, s.Record(ctx, "A", r1, "2023-24", "Key Not Found"))
	require.NoError(t, s.Record(ctx, "A", r1, "2022-23", "Key Not Found"))
	require.NoError(t, s.Record(ctx, "B", r2, "2023-24", "Key Not Found"))
	require.NoError(t, s.Record(ctx, "A", r1, "2023-24", "API Returned Empty"))

	page, err := s.List(ctx, store.SkipFilter{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, store.MaxPageSize, page.Limit)
	require.Len(t, page.Records, 3)
	assert.Equal(t, "A", page.Records[0].Identifier)
	assert.Equal(t, "API Returned Empty", page.Records[0].Reason)
	assert.Equal(t, "B", page.Records[1].Identifier)

	page, err = s.List(ctx, store.SkipFilter{DistrictCode: "0902"})
	require.NoError(t, err)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "B", page.Records[0].Identifier)

	page, err = s.List(ctx, store.SkipFilter{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Records)
	assert.Equal(t, int64(3), page.Total)

	summary, err := s.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, []store.SkipSummary{
		{StateCode: "09", DistrictCode: "0901", YearLabel: "2022-23", Reason: "Key Not Found", Count: 1},
		{StateCode: "09", DistrictCode: "0901", YearLabel: "2023-24", Reason: "API Returned Empty", Count: 1},
		{StateCode: "09", DistrictCode: "0902", YearLabel: "2023-24", Reason: "Key Not Found", Count: 1},
	}, summary)

	require.NoError(t, s.Clear(ctx, "A"))
	page, err = s.List(ctx, store.SkipFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	require.NoError(t, s.Record(ctx, "B", schools.Region{}, "2023-24", "API Returned Empty"))
	page, err = s.List(ctx, store.SkipFilter{StateCode: "09", DistrictCode: "0902"})
	require.NoError(t, err)
	require.Len(t, page.Records, 1, "an empty region keeps the recorded codes")
	assert.Equal(t, "API Returned Empty", page.Records[0].Reason)
}

func TestDataRequests(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	a, err := s.CreateRequest(ctx, "u1", "09", []string{"0901", "0902"})
	require.NoError(t, err)
	b, err := s.CreateRequest(ctx, "u2", "09", []string{"0903"})
	require.NoError(t, err)

	pending, err := s.FindOverlappingPending(ctx, schools.NewRegion("09", "0902"))
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, a, pending[0].ID)

	resolved, err := s.MarkResolved(ctx, []int64{a, b, 42})
	require.NoError(t, err)
	assert.Equal(t, []int64{a, b}, resolved)

	resolved, err = s.MarkResolved(ctx, []int64{a})
	require.NoError(t, err)
	assert.Empty(t, resolved)

	req, err := s.GetRequest(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, store.RequestResolved, req.Status)
	assert.NotNil(t, req.ResolvedAt)
}

func TestRuns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := New()

	id, err := s.StartRun(ctx, store.RunKindDirectory, schools.NewRegion("09", "0901"), "")
	require.NoError(t, err)
	require.NoError(t, s.FinishRun(ctx, id, store.RunOutcome{Status: store.RunCompleted, Added: 3}))

	run, err := s.GetRun(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, store.RunCompleted, run.Status)
	assert.Equal(t, 3, run.Added)
	assert.NotNil(t, run.FinishedAt)

	assert.ErrorIs(t, s.FinishRun(ctx, uuid.New(), store.RunOutcome{}), store.ErrNotFound)
	_, err = s.GetRun(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
}
