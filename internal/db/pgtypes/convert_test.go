package pgtypes

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextRoundTrip(t *testing.T) {
	t.Parallel()

	assert.False(t, Text(nil).Valid)
	assert.Nil(t, StringPtr(pgtype.Text{}))

	name := "GPS Rampur"
	got := StringPtr(Text(&name))
	require.NotNil(t, got)
	assert.Equal(t, name, *got)

	empty := ""
	assert.True(t, Text(&empty).Valid, "an explicit empty string is not NULL")
	assert.False(t, NonEmptyText("").Valid)
	assert.Equal(t, pgtype.Text{String: "x", Valid: true}, NonEmptyText("x"))
}

func TestNumbers(t *testing.T) {
	t.Parallel()

	lat := 26.85
	assert.Equal(t, &lat, Float64Ptr(Float8(&lat)))
	assert.Nil(t, Float64Ptr(Float8(nil)))

	class := int32(8)
	assert.Equal(t, &class, Int32Ptr(Int4(&class)))
	assert.Nil(t, Int32Ptr(Int4(nil)))
}

func TestTimes(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	ts := pgtype.Timestamptz{Time: now, Valid: true}
	assert.Equal(t, now, Time(ts))
	assert.Equal(t, &now, TimePtr(ts))
	assert.True(t, Time(pgtype.Timestamptz{}).IsZero())
	assert.Nil(t, TimePtr(pgtype.Timestamptz{}))
}

func TestUUID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	assert.Equal(t, id, FromUUID(UUID(id)))
	assert.Equal(t, uuid.Nil, FromUUID(pgtype.UUID{}))
}

func TestJSONArray(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []byte("[]"), JSONArray(nil))
	assert.Equal(t, []byte(`[{"a":1}]`), JSONArray([]byte(`[{"a":1}]`)))
}
