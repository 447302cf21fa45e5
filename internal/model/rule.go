package model

// DeadlineRule is one statutory deadline requirement. Rules are read-only
// reference data; more than one rule may exist for a (jurisdiction, category)
// pair (e.g. Saskatchewan's special 45% strike-vote rule next to the general
// one).
type DeadlineRule struct {
	Jurisdiction     JurisdictionCode `json:"jurisdiction"`
	RuleCategory     string           `json:"ruleCategory"`
	DeadlineDays     int              `json:"deadlineDays"`
	LegalReference   string           `json:"legalReference"`
	ThresholdPercent *float64         `json:"thresholdPercent,omitempty"`
}

// Rule categories carried by the builtin table.
const (
	CategoryGrievanceFiling = "grievance_filing"
	CategoryStrikeVote      = "strike_vote"
	CategoryCertification   = "certification_application"
	CategoryULPComplaint    = "ulp_complaint"
)

// Holiday is one observed statutory holiday date. Holiday sets are derived
// per year from the calendar rules, never persisted.
type Holiday struct {
	Date         string           `json:"date"`
	Name         string           `json:"name"`
	Jurisdiction JurisdictionCode `json:"jurisdiction"`
}
