// Package schools holds the catalog domain types shared by the sync pipeline:
// regions, directory entries, upstream detail facets and the stored detail record.
package schools

import (
	"errors"
	"fmt"
	"strings"
)

// Region is a state and district pair scoping both sync phases.
type Region struct {
	StateCode    string `json:"stateCode"`
	DistrictCode string `json:"districtCode"`
}

// NewRegion returns a Region with surrounding whitespace trimmed from both codes.
func NewRegion(stateCode, districtCode string) Region {
	return Region{
		StateCode:    strings.TrimSpace(stateCode),
		DistrictCode: strings.TrimSpace(districtCode),
	}
}

// Validate reports whether both codes are present.
func (r Region) Validate() error {
	var errs []error
	if r.StateCode == "" {
		errs = append(errs, errors.New("state code is required"))
	}
	if r.DistrictCode == "" {
		errs = append(errs, errors.New("district code is required"))
	}
	return errors.Join(errs...)
}

func (r Region) String() string {
	return fmt.Sprintf("%s/%s", r.StateCode, r.DistrictCode)
}

// MasterObjectID is one row of the immutable upstream object reference list.
type MasterObjectID struct {
	ObjectID     string
	StateCode    string
	DistrictCode string
}

// DirectoryEntry is the identity and coordinates of one school as reported by the GIS portal.
type DirectoryEntry struct {
	Identifier   string   `json:"identifier"`
	ObjectID     string   `json:"objectId"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Pincode      string   `json:"pincode,omitempty"`
	StateName    string   `json:"stateName,omitempty"`
	DistrictName string   `json:"districtName,omitempty"`
	StateCode    string   `json:"stateCode"`
	DistrictCode string   `json:"districtCode"`
}

// Region returns the region the entry belongs to.
func (e DirectoryEntry) Region() Region {
	return Region{StateCode: e.StateCode, DistrictCode: e.DistrictCode}
}
