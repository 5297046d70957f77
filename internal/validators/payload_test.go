package validators_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/schoolgis/schoolsync/internal/schools"
	"github.com/schoolgis/schoolsync/internal/validators"
)

func text(s string) *string { return &s }

func TestValidate(t *testing.T) {
	t.Parallel()

	full := &schools.Payload{Report: &schools.Report{SchoolName: text("GPS Rampur"), BlockName: text("Sadar")}}
	nameOnly := &schools.Payload{Report: &schools.Report{SchoolName: text("GPS Rampur")}}
	blockOnly := &schools.Payload{Report: &schools.Report{BlockName: text("Sadar")}}
	blankName := &schools.Payload{Report: &schools.Report{SchoolName: text(""), BlockName: text("Sadar")}}
	statsOnly := &schools.Payload{Stats: &schools.Stats{TotalCount: text("40")}}
	socialOnly := &schools.Payload{Social: map[schools.SocialFlag]json.RawMessage{schools.SocialCWSN: json.RawMessage(`[]`)}}

	tests := []struct {
		name       string
		payload    *schools.Payload
		strict     bool
		wantOK     bool
		wantReason string
	}{
		{name: "strict accepts name and block", payload: full, strict: true, wantOK: true},
		{name: "strict rejects name only", payload: nameOnly, strict: true, wantReason: validators.ReasonStrictFailed},
		{name: "strict rejects blank name", payload: blankName, strict: true, wantReason: validators.ReasonStrictFailed},
		{name: "strict rejects nil payload", payload: nil, strict: true, wantReason: validators.ReasonStrictFailed},
		{name: "strict rejects empty payload", payload: &schools.Payload{}, strict: true, wantReason: validators.ReasonStrictFailed},
		{name: "lenient accepts full", payload: full, wantOK: true},
		{name: "lenient accepts name only", payload: nameOnly, wantOK: true},
		{name: "lenient accepts block only", payload: blockOnly, wantOK: true},
		{name: "lenient rejects nil payload", payload: nil, wantReason: validators.ReasonEmpty},
		{name: "lenient rejects empty payload", payload: &schools.Payload{}, wantReason: validators.ReasonEmpty},
		{name: "lenient rejects stats without identity", payload: statsOnly, wantReason: validators.ReasonMissingNameBlock},
		{name: "lenient rejects social without identity", payload: socialOnly, wantReason: validators.ReasonMissingNameBlock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, reason := validators.Validate(tt.payload, tt.strict)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}
