package schools

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Report is the report-card facet. It carries the name, block and teacher totals.
type Report struct {
	SchoolName    *string
	YearDesc      *string
	SchStatusName *string
	SchTypeDesc   *string
	TotalTeacher  *string
	TotMale       *string
	TotFemale     *string
	TchReg        *string
	TchCont       *string
	LowClass      *string
	HighClass     *string
	StateName     *string
	DistrictName  *string
	BlockName     *string
	VillWardName  *string
	ClusterName   *string
}

func (r *Report) fields() map[string]**string {
	return map[string]**string{
		"schoolName":    &r.SchoolName,
		"yearDesc":      &r.YearDesc,
		"schStatusName": &r.SchStatusName,
		"schTypeDesc":   &r.SchTypeDesc,
		"totalTeacher":  &r.TotalTeacher,
		"totMale":       &r.TotMale,
		"totFemale":     &r.TotFemale,
		"tchReg":        &r.TchReg,
		"tchCont":       &r.TchCont,
		"lowClass":      &r.LowClass,
		"highClass":     &r.HighClass,
		"stateName":     &r.StateName,
		"districtName":  &r.DistrictName,
		"blockName":     &r.BlockName,
		"villWardName":  &r.VillWardName,
		"clusterName":   &r.ClusterName,
	}
}

// Profile is the school profile facet.
type Profile struct {
	HeadMasterName     *string
	MediumOfInstrName1 *string
	MediumOfInstrName2 *string
	MinorityYnDesc     *string
	AnganwadiYnDesc    *string
	AnganwadiStuB      *string
	AnganwadiStuG      *string
	CceYnDesc          *string
	SmcYnDesc          *string
	ApproachRoadYnDesc *string
	ShiftSchYnDesc     *string
}

func (p *Profile) fields() map[string]**string {
	return map[string]**string{
		"headMasterName":     &p.HeadMasterName,
		"mediumOfInstrName1": &p.MediumOfInstrName1,
		"mediumOfInstrName2": &p.MediumOfInstrName2,
		"minorityYnDesc":     &p.MinorityYnDesc,
		"anganwadiYnDesc":    &p.AnganwadiYnDesc,
		"anganwadiStuB":      &p.AnganwadiStuB,
		"anganwadiStuG":      &p.AnganwadiStuG,
		"cceYnDesc":          &p.CceYnDesc,
		"smcYnDesc":          &p.SmcYnDesc,
		"approachRoadYnDesc": &p.ApproachRoadYnDesc,
		"shiftSchYnDesc":     &p.ShiftSchYnDesc,
	}
}

// Facility is the infrastructure facet.
type Facility struct {
	BldStatus           *string
	ClsrmsInst          *string
	ClsrmsGd            *string
	ToiletB             *string
	ToiletG             *string
	DrinkWaterYnDesc    *string
	ElectricityYnDesc   *string
	LibraryYnDesc       *string
	PlaygroundYnDesc    *string
	MedchkYnDesc        *string
	IntegratedLabYnDesc *string
	InternetYnDesc      *string
}

func (f *Facility) fields() map[string]**string {
	return map[string]**string{
		"bldStatus":           &f.BldStatus,
		"clsrmsInst":          &f.ClsrmsInst,
		"clsrmsGd":            &f.ClsrmsGd,
		"toiletb":             &f.ToiletB,
		"toiletg":             &f.ToiletG,
		"drinkWaterYnDesc":    &f.DrinkWaterYnDesc,
		"electricityYnDesc":   &f.ElectricityYnDesc,
		"libraryYnDesc":       &f.LibraryYnDesc,
		"playgroundYnDesc":    &f.PlaygroundYnDesc,
		"medchkYnDesc":        &f.MedchkYnDesc,
		"integratedLabYnDesc": &f.IntegratedLabYnDesc,
		"internetYnDesc":      &f.InternetYnDesc,
	}
}

// Stats is the enrolment and teacher statistics facet.
type Stats struct {
	TotalBoy        *string
	TotalGirl       *string
	TotalCount      *string
	TotalTeacherReg *string
	TotalTeacherCon *string
}

func (s *Stats) fields() map[string]**string {
	return map[string]**string{
		"totalBoy":        &s.TotalBoy,
		"totalGirl":       &s.TotalGirl,
		"totalCount":      &s.TotalCount,
		"totalTeacherReg": &s.TotalTeacherReg,
		"totalTeacherCon": &s.TotalTeacherCon,
	}
}

// SocialFlag selects one social-category breakdown of the statistics service.
type SocialFlag int

const (
	// SocialGeneralCaste is the general/SC/ST/OBC breakdown.
	SocialGeneralCaste SocialFlag = 1
	// SocialReligion is the religion breakdown.
	SocialReligion SocialFlag = 2
	// SocialCWSN is the children-with-special-needs breakdown.
	SocialCWSN SocialFlag = 3
	// SocialEWS is the economically-weaker-section breakdown.
	SocialEWS SocialFlag = 4
	// SocialRTE is the right-to-education admissions breakdown.
	SocialRTE SocialFlag = 5
)

// SocialFlags lists every social breakdown fetched for a school.
var SocialFlags = []SocialFlag{SocialGeneralCaste, SocialReligion, SocialCWSN, SocialEWS, SocialRTE}

// Payload is everything fetched for one school and year. Every facet is
// independently nil when its upstream call failed or returned no data.
type Payload struct {
	Profile  *Profile
	Facility *Facility
	Report   *Report
	Stats    *Stats
	Social   map[SocialFlag]json.RawMessage
}

// IsEmpty reports whether no facet was retrieved at all.
func (p *Payload) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.Profile == nil && p.Facility == nil && p.Report == nil && p.Stats == nil && len(p.Social) == 0
}

// SchoolName returns the report facet's school name, or nil.
func (p *Payload) SchoolName() *string {
	if p == nil || p.Report == nil {
		return nil
	}
	return p.Report.SchoolName
}

// BlockName returns the report facet's block name, or nil.
func (p *Payload) BlockName() *string {
	if p == nil || p.Report == nil {
		return nil
	}
	return p.Report.BlockName
}

type facet interface {
	fields() map[string]**string
}

// ParseReport decodes a report facet from its JSON object.
func ParseReport(obj gjson.Result) *Report {
	return bindFacet(obj, &Report{})
}

// ParseProfile decodes a profile facet from its JSON object.
func ParseProfile(obj gjson.Result) *Profile {
	return bindFacet(obj, &Profile{})
}

// ParseFacility decodes a facility facet from its JSON object.
func ParseFacility(obj gjson.Result) *Facility {
	return bindFacet(obj, &Facility{})
}

// ParseStats decodes a statistics facet from its JSON object.
func ParseStats(obj gjson.Result) *Stats {
	return bindFacet(obj, &Stats{})
}

// bindFacet copies every known key of obj into f. Numbers and booleans keep
// their JSON text, nulls stay nil. It returns nil when obj is not an object.
func bindFacet[T facet](obj gjson.Result, f T) T {
	if !obj.IsObject() {
		var zero T
		return zero
	}
	for key, dst := range f.fields() {
		v := obj.Get(key)
		if !v.Exists() || v.Type == gjson.Null {
			continue
		}
		s := v.String()
		*dst = &s
	}
	return f
}
