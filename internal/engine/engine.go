// Package engine resolves named legal deadlines to concrete calendar dates.
package engine

import (
	"fmt"

	"jurisdiction-engine/internal/busday"
	"jurisdiction-engine/internal/model"
	"jurisdiction-engine/internal/rules"
)

// Result is a resolved deadline. The rule fields are always populated; the
// boundary decides how much to expose based on the requested mode.
type Result struct {
	DeadlineDate string
	Rule         model.DeadlineRule
}

// ResolveDeadline looks up the applicable rule for (jurisdiction, category)
// and walks the rule's deadline length in business days from startDate.
// When several rules match, the general rule (listed first) applies.
func ResolveDeadline(code model.JurisdictionCode, category, startDate, mode string) (*Result, error) {
	if !model.ValidJurisdiction(code) {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidJurisdiction, code)
	}

	switch mode {
	case model.ModeSimple, model.ModeDetailed, "":
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", model.ErrInvalidArgument, mode)
	}

	start, err := model.ParseDate(startDate)
	if err != nil {
		return nil, err
	}

	matched := rules.For(code, category)
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: no %q rule for %s", model.ErrRuleNotFound, category, code)
	}
	rule := matched[0]

	deadline, err := busday.Add(code, start, rule.DeadlineDays)
	if err != nil {
		return nil, err
	}

	return &Result{
		DeadlineDate: model.FormatDate(deadline),
		Rule:         rule,
	}, nil
}
