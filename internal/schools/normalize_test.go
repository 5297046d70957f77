package schools_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolgis/schoolsync/internal/schools"
)

func strPtr(s string) *string { return &s }

func TestNumberOrZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input *string
		want  int32
	}{
		{name: "nil", input: nil, want: 0},
		{name: "empty", input: strPtr(""), want: 0},
		{name: "plain integer", input: strPtr("42"), want: 42},
		{name: "leading whitespace", input: strPtr("  7"), want: 7},
		{name: "trailing garbage", input: strPtr("12 rooms"), want: 12},
		{name: "decimal truncated", input: strPtr("3.9"), want: 3},
		{name: "negative", input: strPtr("-5"), want: -5},
		{name: "explicit plus", input: strPtr("+8"), want: 8},
		{name: "not a number", input: strPtr("N/A"), want: 0},
		{name: "sign only", input: strPtr("-"), want: 0},
		{name: "clamped", input: strPtr("99999999999"), want: 2147483647},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, schools.NumberOrZero(tt.input))
		})
	}
}

func TestIntOrNull(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input *string
		want  *int32
	}{
		{name: "nil", input: nil, want: nil},
		{name: "empty", input: strPtr(""), want: nil},
		{name: "not a number", input: strPtr("pre-primary"), want: nil},
		{name: "zero is kept", input: strPtr("0"), want: func() *int32 { v := int32(0); return &v }()},
		{name: "class twelve", input: strPtr("12"), want: func() *int32 { v := int32(12); return &v }()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, schools.IntOrNull(tt.input))
		})
	}
}

func TestBoolFromYesNo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input *string
		want  bool
	}{
		{name: "nil", input: nil, want: false},
		{name: "empty", input: strPtr(""), want: false},
		{name: "yes", input: strPtr("Yes"), want: true},
		{name: "yes inside text", input: strPtr("1-Yes"), want: true},
		{name: "upper case", input: strPtr("YES"), want: true},
		{name: "starts with one", input: strPtr("1"), want: true},
		{name: "no", input: strPtr("2-No"), want: false},
		{name: "zero", input: strPtr("0"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, schools.BoolFromYesNo(tt.input))
		})
	}
}

func TestHasText(t *testing.T) {
	t.Parallel()

	assert.False(t, schools.HasText(nil))
	assert.False(t, schools.HasText(strPtr("")))
	assert.True(t, schools.HasText(strPtr("GPS Rampur")))
}
