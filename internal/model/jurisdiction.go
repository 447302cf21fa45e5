package model

// JurisdictionCode identifies one of the 14 Canadian labour-law
// jurisdictions (13 provinces/territories plus Federal).
type JurisdictionCode string

const (
	Federal              JurisdictionCode = "CA-FED"
	Alberta              JurisdictionCode = "CA-AB"
	BritishColumbia      JurisdictionCode = "CA-BC"
	Manitoba             JurisdictionCode = "CA-MB"
	NewBrunswick         JurisdictionCode = "CA-NB"
	NewfoundlandLabrador JurisdictionCode = "CA-NL"
	NovaScotia           JurisdictionCode = "CA-NS"
	NorthwestTerritories JurisdictionCode = "CA-NT"
	Nunavut              JurisdictionCode = "CA-NU"
	Ontario              JurisdictionCode = "CA-ON"
	PrinceEdwardIsland   JurisdictionCode = "CA-PE"
	Quebec               JurisdictionCode = "CA-QC"
	Saskatchewan         JurisdictionCode = "CA-SK"
	Yukon                JurisdictionCode = "CA-YT"
)

// Jurisdiction is static reference data describing one jurisdiction.
type Jurisdiction struct {
	Code                  JurisdictionCode `json:"code"`
	Name                  string           `json:"name"`
	IsBilingual           bool             `json:"isBilingual"`
	BusinessDayConvention string           `json:"businessDayConvention"`
}

const conventionMonFri = "monday_to_friday"

// Jurisdictions lists all 14 jurisdictions in display order.
// Built once at process start, never mutated.
var Jurisdictions = []Jurisdiction{
	{Federal, "Federal", true, conventionMonFri},
	{Alberta, "Alberta", false, conventionMonFri},
	{BritishColumbia, "British Columbia", false, conventionMonFri},
	{Manitoba, "Manitoba", false, conventionMonFri},
	{NewBrunswick, "New Brunswick", true, conventionMonFri},
	{NewfoundlandLabrador, "Newfoundland and Labrador", false, conventionMonFri},
	{NovaScotia, "Nova Scotia", false, conventionMonFri},
	{NorthwestTerritories, "Northwest Territories", false, conventionMonFri},
	{Nunavut, "Nunavut", false, conventionMonFri},
	{Ontario, "Ontario", false, conventionMonFri},
	{PrinceEdwardIsland, "Prince Edward Island", false, conventionMonFri},
	{Quebec, "Quebec", true, conventionMonFri},
	{Saskatchewan, "Saskatchewan", false, conventionMonFri},
	{Yukon, "Yukon", false, conventionMonFri},
}

var jurisdictionIndex = func() map[JurisdictionCode]Jurisdiction {
	m := make(map[JurisdictionCode]Jurisdiction, len(Jurisdictions))
	for _, j := range Jurisdictions {
		m[j.Code] = j
	}
	return m
}()

// LookupJurisdiction returns the jurisdiction for code.
func LookupJurisdiction(code JurisdictionCode) (Jurisdiction, bool) {
	j, ok := jurisdictionIndex[code]
	return j, ok
}

// ValidJurisdiction reports whether code names a known jurisdiction.
func ValidJurisdiction(code JurisdictionCode) bool {
	_, ok := jurisdictionIndex[code]
	return ok
}
