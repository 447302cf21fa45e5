// Package rules holds the per-jurisdiction statutory deadline rule table.
// The table is read-only reference data, fixed after Load() returns.
package rules

import "jurisdiction-engine/internal/model"

func pct(p float64) *float64 { return &p }

func rule(code model.JurisdictionCode, category string, days int, ref string, threshold *float64) model.DeadlineRule {
	return model.DeadlineRule{
		Jurisdiction:     code,
		RuleCategory:     category,
		DeadlineDays:     days,
		LegalReference:   ref,
		ThresholdPercent: threshold,
	}
}

// builtin is the complete rule table shipped with the engine. Within a
// (jurisdiction, category) pair the general rule is listed first; special
// rules (e.g. Saskatchewan's 45% strike-vote rule) follow it.
var builtin = []model.DeadlineRule{
	// Federal - Canada Labour Code, RSC 1985, c L-2
	rule(model.Federal, model.CategoryGrievanceFiling, 25, "Canada Labour Code, RSC 1985, c L-2, s 240", nil),
	rule(model.Federal, model.CategoryStrikeVote, 60, "Canada Labour Code, RSC 1985, c L-2, s 87.3", pct(50)),
	rule(model.Federal, model.CategoryCertification, 90, "Canada Labour Code, RSC 1985, c L-2, s 24", nil),
	rule(model.Federal, model.CategoryULPComplaint, 90, "Canada Labour Code, RSC 1985, c L-2, s 97(2)", nil),

	// Alberta - Labour Relations Code, RSA 2000, c L-1
	rule(model.Alberta, model.CategoryGrievanceFiling, 30, "Labour Relations Code, RSA 2000, c L-1, s 135", nil),
	rule(model.Alberta, model.CategoryStrikeVote, 120, "Labour Relations Code, RSA 2000, c L-1, s 78", pct(50)),
	rule(model.Alberta, model.CategoryCertification, 90, "Labour Relations Code, RSA 2000, c L-1, s 32", nil),
	rule(model.Alberta, model.CategoryULPComplaint, 90, "Labour Relations Code, RSA 2000, c L-1, s 16", nil),

	// British Columbia - Labour Relations Code, RSBC 1996, c 244
	rule(model.BritishColumbia, model.CategoryGrievanceFiling, 30, "Labour Relations Code, RSBC 1996, c 244, s 84", nil),
	rule(model.BritishColumbia, model.CategoryStrikeVote, 90, "Labour Relations Code, RSBC 1996, c 244, s 60", pct(50)),
	rule(model.BritishColumbia, model.CategoryCertification, 90, "Labour Relations Code, RSBC 1996, c 244, s 18", nil),
	rule(model.BritishColumbia, model.CategoryULPComplaint, 90, "Labour Relations Code, RSBC 1996, c 244, s 14", nil),

	// Manitoba - The Labour Relations Act, CCSM c L10
	rule(model.Manitoba, model.CategoryGrievanceFiling, 30, "The Labour Relations Act, CCSM c L10, s 126", nil),
	rule(model.Manitoba, model.CategoryStrikeVote, 60, "The Labour Relations Act, CCSM c L10, s 89", pct(65)),
	rule(model.Manitoba, model.CategoryCertification, 90, "The Labour Relations Act, CCSM c L10, s 35", nil),
	rule(model.Manitoba, model.CategoryULPComplaint, 90, "The Labour Relations Act, CCSM c L10, s 30", nil),

	// New Brunswick - Industrial Relations Act, RSNB 1973, c I-4
	rule(model.NewBrunswick, model.CategoryGrievanceFiling, 30, "Industrial Relations Act, RSNB 1973, c I-4, s 55", nil),
	rule(model.NewBrunswick, model.CategoryStrikeVote, 60, "Industrial Relations Act, RSNB 1973, c I-4, s 91", pct(50)),
	rule(model.NewBrunswick, model.CategoryCertification, 90, "Industrial Relations Act, RSNB 1973, c I-4, s 14", nil),
	rule(model.NewBrunswick, model.CategoryULPComplaint, 90, "Industrial Relations Act, RSNB 1973, c I-4, s 107", nil),

	// Newfoundland and Labrador - Labour Relations Act, RSNL 1990, c L-1
	rule(model.NewfoundlandLabrador, model.CategoryGrievanceFiling, 30, "Labour Relations Act, RSNL 1990, c L-1, s 86", nil),
	rule(model.NewfoundlandLabrador, model.CategoryStrikeVote, 60, "Labour Relations Act, RSNL 1990, c L-1, s 98", pct(50)),
	rule(model.NewfoundlandLabrador, model.CategoryCertification, 90, "Labour Relations Act, RSNL 1990, c L-1, s 38", nil),
	rule(model.NewfoundlandLabrador, model.CategoryULPComplaint, 90, "Labour Relations Act, RSNL 1990, c L-1, s 123", nil),

	// Nova Scotia - Trade Union Act, RSNS 1989, c 475
	rule(model.NovaScotia, model.CategoryGrievanceFiling, 30, "Trade Union Act, RSNS 1989, c 475, s 42", nil),
	rule(model.NovaScotia, model.CategoryStrikeVote, 60, "Trade Union Act, RSNS 1989, c 475, s 48", pct(50)),
	rule(model.NovaScotia, model.CategoryCertification, 90, "Trade Union Act, RSNS 1989, c 475, s 23", nil),
	rule(model.NovaScotia, model.CategoryULPComplaint, 90, "Trade Union Act, RSNS 1989, c 475, s 53", nil),

	// Northwest Territories (federally modelled board)
	rule(model.NorthwestTerritories, model.CategoryGrievanceFiling, 25, "Canada Labour Code, RSC 1985, c L-2, s 240 (as applied)", nil),
	rule(model.NorthwestTerritories, model.CategoryStrikeVote, 60, "Canada Labour Code, RSC 1985, c L-2, s 87.3 (as applied)", pct(50)),
	rule(model.NorthwestTerritories, model.CategoryCertification, 90, "Canada Labour Code, RSC 1985, c L-2, s 24 (as applied)", nil),
	rule(model.NorthwestTerritories, model.CategoryULPComplaint, 90, "Canada Labour Code, RSC 1985, c L-2, s 97(2) (as applied)", nil),

	// Nunavut (federally modelled board)
	rule(model.Nunavut, model.CategoryGrievanceFiling, 25, "Canada Labour Code, RSC 1985, c L-2, s 240 (as applied)", nil),
	rule(model.Nunavut, model.CategoryStrikeVote, 60, "Canada Labour Code, RSC 1985, c L-2, s 87.3 (as applied)", pct(50)),
	rule(model.Nunavut, model.CategoryCertification, 90, "Canada Labour Code, RSC 1985, c L-2, s 24 (as applied)", nil),
	rule(model.Nunavut, model.CategoryULPComplaint, 90, "Canada Labour Code, RSC 1985, c L-2, s 97(2) (as applied)", nil),

	// Ontario - Labour Relations Act, 1995, SO 1995, c 1, Sch A
	rule(model.Ontario, model.CategoryGrievanceFiling, 30, "Labour Relations Act, 1995, SO 1995, c 1, Sch A, s 48", nil),
	rule(model.Ontario, model.CategoryStrikeVote, 30, "Labour Relations Act, 1995, SO 1995, c 1, Sch A, s 79(3)", pct(50)),
	rule(model.Ontario, model.CategoryCertification, 90, "Labour Relations Act, 1995, SO 1995, c 1, Sch A, s 7", nil),
	rule(model.Ontario, model.CategoryULPComplaint, 90, "Labour Relations Act, 1995, SO 1995, c 1, Sch A, s 96", nil),

	// Prince Edward Island - Labour Act, RSPEI 1988, c L-1
	rule(model.PrinceEdwardIsland, model.CategoryGrievanceFiling, 30, "Labour Act, RSPEI 1988, c L-1, s 38", nil),
	rule(model.PrinceEdwardIsland, model.CategoryStrikeVote, 60, "Labour Act, RSPEI 1988, c L-1, s 42", pct(50)),
	rule(model.PrinceEdwardIsland, model.CategoryCertification, 90, "Labour Act, RSPEI 1988, c L-1, s 13", nil),
	rule(model.PrinceEdwardIsland, model.CategoryULPComplaint, 90, "Labour Act, RSPEI 1988, c L-1, s 10", nil),

	// Quebec - Labour Code, CQLR c C-27
	rule(model.Quebec, model.CategoryGrievanceFiling, 15, "Labour Code, CQLR c C-27, s 100.10", nil),
	rule(model.Quebec, model.CategoryStrikeVote, 60, "Labour Code, CQLR c C-27, s 20.2", pct(50)),
	rule(model.Quebec, model.CategoryCertification, 90, "Labour Code, CQLR c C-27, s 25", nil),
	rule(model.Quebec, model.CategoryULPComplaint, 90, "Labour Code, CQLR c C-27, s 116", nil),

	// Saskatchewan - The Saskatchewan Employment Act, SS 2013, c S-15.1
	rule(model.Saskatchewan, model.CategoryGrievanceFiling, 25, "The Saskatchewan Employment Act, SS 2013, c S-15.1, s 6-45", nil),
	rule(model.Saskatchewan, model.CategoryStrikeVote, 90, "The Saskatchewan Employment Act, SS 2013, c S-15.1, s 6-34", pct(50)),
	rule(model.Saskatchewan, model.CategoryStrikeVote, 90, "The Saskatchewan Employment Act, SS 2013, c S-15.1, s 6-33 (45% support threshold)", pct(45)),
	rule(model.Saskatchewan, model.CategoryCertification, 90, "The Saskatchewan Employment Act, SS 2013, c S-15.1, s 6-9", nil),
	rule(model.Saskatchewan, model.CategoryULPComplaint, 90, "The Saskatchewan Employment Act, SS 2013, c S-15.1, s 6-62", nil),

	// Yukon (federally modelled board)
	rule(model.Yukon, model.CategoryGrievanceFiling, 25, "Canada Labour Code, RSC 1985, c L-2, s 240 (as applied)", nil),
	rule(model.Yukon, model.CategoryStrikeVote, 60, "Canada Labour Code, RSC 1985, c L-2, s 87.3 (as applied)", pct(50)),
	rule(model.Yukon, model.CategoryCertification, 90, "Canada Labour Code, RSC 1985, c L-2, s 24 (as applied)", nil),
	rule(model.Yukon, model.CategoryULPComplaint, 90, "Canada Labour Code, RSC 1985, c L-2, s 97(2) (as applied)", nil),
}

// table is the active rule set. Load may replace it wholesale with a
// registry-served table before the server starts; after that the slice is
// never written again.
var table = builtin

// For returns the jurisdiction's rules, filtered by category when one is
// given. Unknown jurisdictions and categories yield an empty slice, not an
// error - callers decide what empty means.
func For(code model.JurisdictionCode, category string) []model.DeadlineRule {
	var out []model.DeadlineRule
	for _, r := range table {
		if r.Jurisdiction != code {
			continue
		}
		if category != "" && r.RuleCategory != category {
			continue
		}
		out = append(out, r)
	}
	return out
}
