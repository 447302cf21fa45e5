package model

// DeadlineRequest is the body of POST /api/jurisdiction/calculate-deadline.
type DeadlineRequest struct {
	Jurisdiction JurisdictionCode `json:"jurisdiction"`
	RuleCategory string           `json:"ruleCategory"`
	StartDate    string           `json:"startDate"`
	Mode         string           `json:"mode"`
}

// BusinessDayRequest is the body of POST /api/jurisdiction/business-days.
// Add and subtract use BusinessDays; count uses EndDate.
type BusinessDayRequest struct {
	Operation    string           `json:"operation"`
	Jurisdiction JurisdictionCode `json:"jurisdiction"`
	StartDate    string           `json:"startDate"`
	BusinessDays *int             `json:"businessDays,omitempty"`
	EndDate      string           `json:"endDate,omitempty"`
}

const (
	OperationAdd      = "add"
	OperationSubtract = "subtract"
	OperationCount    = "count"
)

const (
	ModeSimple   = "simple"
	ModeDetailed = "detailed"
)
