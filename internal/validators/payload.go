// Package validators decides whether a fetched school payload is complete enough to store.
package validators

import "github.com/schoolgis/schoolsync/internal/schools"

// Skip reasons recorded in the skip ledger. Operators filter on these strings.
const (
	ReasonKeyNotFound      = "Key Not Found"
	ReasonEmpty            = "API Returned Empty"
	ReasonMissingNameBlock = "Missing School Name & Block"
	ReasonStrictFailed     = "Validation Failed (Strict Mode)"
	// ReasonErrorPrefix prefixes the message of an unexpected per-school failure.
	ReasonErrorPrefix = "Error: "
)

// Validate checks a payload against the storage policy.
//
// In strict mode the report facet must carry both a school name and a block name.
// Otherwise the payload must have at least one facet and at least one of those two fields.
// The returned reason is empty when ok is true.
func Validate(p *schools.Payload, strict bool) (ok bool, reason string) {
	name := schools.HasText(p.SchoolName())
	block := schools.HasText(p.BlockName())

	if strict {
		if name && block {
			return true, ""
		}
		return false, ReasonStrictFailed
	}

	if p.IsEmpty() {
		return false, ReasonEmpty
	}
	if !name && !block {
		return false, ReasonMissingNameBlock
	}
	return true, ""
}
