package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolgis/schoolsync/internal/schools"
)

func TestDifference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		universe []string
		known    []string
		expected []string
	}{
		{
			name:     "nothing known",
			universe: []string{"3", "1", "2"},
			expected: []string{"3", "1", "2"},
		},
		{
			name:     "everything known",
			universe: []string{"1", "2"},
			known:    []string{"2", "1"},
			expected: []string{},
		},
		{
			name:     "order of universe is kept",
			universe: []string{"9", "4", "7", "1"},
			known:    []string{"4"},
			expected: []string{"9", "7", "1"},
		},
		{
			name:     "values compare trimmed",
			universe: []string{" 12", "13 ", "14"},
			known:    []string{"12 ", " 14"},
			expected: []string{"13"},
		},
		{
			name:     "duplicates and blanks are dropped",
			universe: []string{"5", "", "5", "  ", "6"},
			expected: []string{"5", "6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, difference(tt.universe, tt.known))
		})
	}
}

func TestChunk(t *testing.T) {
	t.Parallel()

	ids := make([]int, 23)
	for i := range ids {
		ids[i] = i
	}

	chunks := chunk(ids, 5)
	assert.Len(t, chunks, 5)
	for _, c := range chunks[:4] {
		assert.Len(t, c, 5)
	}
	assert.Equal(t, []int{20, 21, 22}, chunks[4])

	assert.Empty(t, chunk([]int{}, 5))
	assert.Len(t, chunk(ids, 0), 23, "size below one is treated as one")
}

func TestNormalizeRequest(t *testing.T) {
	t.Parallel()

	req := normalizeRequest(DetailRequest{
		Region:      schools.Region{StateCode: " 09 ", DistrictCode: "0901 "},
		Identifiers: []string{" a ", "b", "a", ""},
	})

	assert.Equal(t, schools.Region{StateCode: "09", DistrictCode: "0901"}, req.Region)
	assert.Equal(t, DefaultYearID, req.YearID)
	assert.Equal(t, DefaultChunkSize, req.ChunkSize)
	assert.Equal(t, []string{"a", "b"}, req.Identifiers)

	kept := normalizeRequest(DetailRequest{YearID: 10, ChunkSize: 2})
	assert.Equal(t, 10, kept.YearID)
	assert.Equal(t, 2, kept.ChunkSize)
	assert.Empty(t, kept.Identifiers)
}

func TestNewOptionsBatchSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, maxBatchSize, newOptions(nil).batchSize)
	assert.Equal(t, 7, newOptions([]Option{WithBatchSize(7)}).batchSize)
	assert.Equal(t, maxBatchSize, newOptions([]Option{WithBatchSize(500)}).batchSize)
	assert.Equal(t, maxBatchSize, newOptions([]Option{WithBatchSize(-1)}).batchSize)
}
