package model

type ListResponse struct {
	Success       bool           `json:"success"`
	Jurisdictions []Jurisdiction `json:"jurisdictions"`
}

type RulesResponse struct {
	Success bool           `json:"success"`
	Rules   []DeadlineRule `json:"rules"`
}

type ComparisonEntry struct {
	Jurisdiction JurisdictionCode `json:"jurisdiction"`
	Rules        []DeadlineRule   `json:"rules"`
}

type CompareResponse struct {
	Success    bool              `json:"success"`
	Comparison []ComparisonEntry `json:"comparison"`
}

// DeadlineResponse carries deadlineDays and legalReference only in
// detailed mode. The day count is a pointer so its presence depends on
// the mode alone, not on the rule's value.
type DeadlineResponse struct {
	Success        bool   `json:"success"`
	DeadlineDate   string `json:"deadlineDate"`
	DeadlineDays   *int   `json:"deadlineDays,omitempty"`
	LegalReference string `json:"legalReference,omitempty"`
}

// BusinessDayResponse carries resultDate for add/subtract and
// businessDaysCount for count. The count is a pointer so a legitimate
// zero survives omitempty.
type BusinessDayResponse struct {
	Success           bool   `json:"success"`
	ResultDate        string `json:"resultDate,omitempty"`
	BusinessDaysCount *int   `json:"businessDaysCount,omitempty"`
}

type HolidaysResponse struct {
	Success  bool      `json:"success"`
	Holidays []Holiday `json:"holidays"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
