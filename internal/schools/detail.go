package schools

import (
	"encoding/json"
	"time"
)

// DetailRecord is the persisted detail row for one school in one academic year.
// Text fields are nil when the upstream facet lacked them.
type DetailRecord struct {
	Identifier string  `json:"udiseCode"`
	YearLabel  string  `json:"yearDesc"`
	Key        string  `json:"schoolId"`
	SchoolName *string `json:"schoolName"`

	StateName       *string `json:"stateName"`
	DistrictName    *string `json:"districtName"`
	BlockName       *string `json:"blockName"`
	VillageWardName *string `json:"villageWardName"`
	ClusterName     *string `json:"clusterName"`

	HeadMasterName       *string `json:"headMasterName"`
	SchoolStatus         *string `json:"schoolStatus"`
	SchoolType           *string `json:"schoolType"`
	MediumOfInstruction1 *string `json:"mediumOfInstruction1"`
	MediumOfInstruction2 *string `json:"mediumOfInstruction2"`

	IsMinoritySchool             bool  `json:"isMinoritySchool"`
	HasAnganwadi                 bool  `json:"hasAnganwadi"`
	AnganwadiBoyStudents         int32 `json:"anganwadiBoyStudents"`
	AnganwadiGirlStudents        int32 `json:"anganwadiGirlStudents"`
	IsCCEImplemented             bool  `json:"isCceImplemented"`
	HasSchoolManagementCommittee bool  `json:"hasSchoolManagementCommittee"`
	HasApproachRoad              bool  `json:"hasApproachRoad"`
	IsShiftSchool                bool  `json:"isShiftSchool"`

	BuildingStatus           *string `json:"buildingStatus"`
	TotalClassroomsInUse     int32   `json:"totalClassroomsInUse"`
	GoodConditionClassrooms  int32   `json:"goodConditionClassrooms"`
	TotalToiletsBoys         int32   `json:"totalToiletsBoys"`
	TotalToiletsGirls        int32   `json:"totalToiletsGirls"`
	HasDrinkingWaterFacility bool    `json:"hasDrinkingWaterFacility"`
	HasElectricity           bool    `json:"hasElectricity"`
	HasLibrary               bool    `json:"hasLibrary"`
	HasPlayground            bool    `json:"hasPlayground"`
	HasMedicalCheckup        bool    `json:"hasMedicalCheckup"`
	HasIntegratedLab         bool    `json:"hasIntegratedLab"`
	HasInternet              bool    `json:"hasInternet"`

	TotalTeachers         int32  `json:"totalTeachers"`
	TotalMaleTeachers     int32  `json:"totalMaleTeachers"`
	TotalFemaleTeachers   int32  `json:"totalFemaleTeachers"`
	TotalRegularTeachers  int32  `json:"totalRegularTeachers"`
	TotalContractTeachers int32  `json:"totalContractTeachers"`
	LowestClass           *int32 `json:"lowestClass"`
	HighestClass          *int32 `json:"highestClass"`

	TotalBoyStudents  int32 `json:"totalBoyStudents"`
	TotalGirlStudents int32 `json:"totalGirlStudents"`
	TotalStudents     int32 `json:"totalStudents"`

	SocialGeneralCaste json.RawMessage `json:"socialDataGeneralScStObc"`
	SocialReligion     json.RawMessage `json:"socialDataReligion"`
	SocialCWSN         json.RawMessage `json:"socialDataCwsn"`
	SocialRTE          json.RawMessage `json:"socialDataRte"`
	SocialEWS          json.RawMessage `json:"socialDataEws"`

	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

var emptyArray = json.RawMessage("[]")

// BuildDetailRecord flattens a fetched payload into a detail row. Missing
// facets behave as empty objects: counts become 0, flags false, text nil and
// social breakdowns an empty JSON array.
func BuildDetailRecord(identifier, key, yearLabel string, p *Payload) *DetailRecord {
	var (
		r  = &Report{}
		pr = &Profile{}
		f  = &Facility{}
		s  = &Stats{}
	)
	var social map[SocialFlag]json.RawMessage
	if p != nil {
		if p.Report != nil {
			r = p.Report
		}
		if p.Profile != nil {
			pr = p.Profile
		}
		if p.Facility != nil {
			f = p.Facility
		}
		if p.Stats != nil {
			s = p.Stats
		}
		social = p.Social
	}

	totalTeachers := NumberOrZero(s.TotalTeacherReg) + NumberOrZero(s.TotalTeacherCon)
	if HasText(r.TotalTeacher) {
		totalTeachers = NumberOrZero(r.TotalTeacher)
	}

	return &DetailRecord{
		Identifier: identifier,
		YearLabel:  yearLabel,
		Key:        key,
		SchoolName: r.SchoolName,

		StateName:       r.StateName,
		DistrictName:    r.DistrictName,
		BlockName:       r.BlockName,
		VillageWardName: r.VillWardName,
		ClusterName:     r.ClusterName,

		HeadMasterName:       pr.HeadMasterName,
		SchoolStatus:         r.SchStatusName,
		SchoolType:           r.SchTypeDesc,
		MediumOfInstruction1: pr.MediumOfInstrName1,
		MediumOfInstruction2: pr.MediumOfInstrName2,

		IsMinoritySchool:             BoolFromYesNo(pr.MinorityYnDesc),
		HasAnganwadi:                 BoolFromYesNo(pr.AnganwadiYnDesc),
		AnganwadiBoyStudents:         NumberOrZero(pr.AnganwadiStuB),
		AnganwadiGirlStudents:        NumberOrZero(pr.AnganwadiStuG),
		IsCCEImplemented:             BoolFromYesNo(pr.CceYnDesc),
		HasSchoolManagementCommittee: BoolFromYesNo(pr.SmcYnDesc),
		HasApproachRoad:              BoolFromYesNo(pr.ApproachRoadYnDesc),
		IsShiftSchool:                BoolFromYesNo(pr.ShiftSchYnDesc),

		BuildingStatus:           f.BldStatus,
		TotalClassroomsInUse:     NumberOrZero(f.ClsrmsInst),
		GoodConditionClassrooms:  NumberOrZero(f.ClsrmsGd),
		TotalToiletsBoys:         NumberOrZero(f.ToiletB),
		TotalToiletsGirls:        NumberOrZero(f.ToiletG),
		HasDrinkingWaterFacility: BoolFromYesNo(f.DrinkWaterYnDesc),
		HasElectricity:           BoolFromYesNo(f.ElectricityYnDesc),
		HasLibrary:               BoolFromYesNo(f.LibraryYnDesc),
		HasPlayground:            BoolFromYesNo(f.PlaygroundYnDesc),
		HasMedicalCheckup:        BoolFromYesNo(f.MedchkYnDesc),
		HasIntegratedLab:         BoolFromYesNo(f.IntegratedLabYnDesc),
		HasInternet:              BoolFromYesNo(f.InternetYnDesc),

		TotalTeachers:         totalTeachers,
		TotalMaleTeachers:     NumberOrZero(r.TotMale),
		TotalFemaleTeachers:   NumberOrZero(r.TotFemale),
		TotalRegularTeachers:  NumberOrZero(r.TchReg),
		TotalContractTeachers: NumberOrZero(r.TchCont),
		LowestClass:           IntOrNull(r.LowClass),
		HighestClass:          IntOrNull(r.HighClass),

		TotalBoyStudents:  NumberOrZero(s.TotalBoy),
		TotalGirlStudents: NumberOrZero(s.TotalGirl),
		TotalStudents:     NumberOrZero(s.TotalCount),

		SocialGeneralCaste: socialOrEmpty(social, SocialGeneralCaste),
		SocialReligion:     socialOrEmpty(social, SocialReligion),
		SocialCWSN:         socialOrEmpty(social, SocialCWSN),
		SocialRTE:          socialOrEmpty(social, SocialRTE),
		SocialEWS:          socialOrEmpty(social, SocialEWS),
	}
}

func socialOrEmpty(social map[SocialFlag]json.RawMessage, flag SocialFlag) json.RawMessage {
	if raw, ok := social[flag]; ok && len(raw) > 0 && json.Valid(raw) {
		return raw
	}
	return emptyArray
}
