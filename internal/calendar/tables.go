package calendar

import (
	"time"

	"jurisdiction-engine/internal/model"
)

// national holidays observed in every jurisdiction except Quebec, which
// carries its own complete list below.
var national = []holidayRule{
	fixed("New Year's Day", time.January, 1),
	easterRel("Good Friday", -2),
	fixed("Canada Day", time.July, 1),
	nth("Labour Day", time.September, time.Monday, 1),
	nth("Thanksgiving", time.October, time.Monday, 2),
	fixed("Remembrance Day", time.November, 11),
	fixed("Christmas Day", time.December, 25),
	fixed("Boxing Day", time.December, 26),
}

var familyDay = nth("Family Day", time.February, time.Monday, 3)

// Victoria Day is the last Monday preceding May 25, so the anchor is
// May 24: when May 25 is itself a Monday the holiday falls on the 18th.
var victoriaDay = onOrBefore("Victoria Day", time.May, 24, time.Monday)

// additions holds each jurisdiction's holidays beyond the national set.
var additions = map[model.JurisdictionCode][]holidayRule{
	model.Federal: {
		easterRel("Easter Monday", 1),
		victoriaDay,
		fixed("National Day for Truth and Reconciliation", time.September, 30),
	},
	model.Alberta: {
		familyDay,
		victoriaDay,
	},
	model.BritishColumbia: {
		familyDay,
		victoriaDay,
		nth("British Columbia Day", time.August, time.Monday, 1),
	},
	model.Manitoba: {
		nth("Louis Riel Day", time.February, time.Monday, 3),
		victoriaDay,
	},
	model.NewBrunswick: {
		familyDay,
		victoriaDay,
		nth("New Brunswick Day", time.August, time.Monday, 1),
	},
	model.NewfoundlandLabrador: {
		victoriaDay,
	},
	model.NovaScotia: {
		nth("Heritage Day", time.February, time.Monday, 3),
	},
	model.NorthwestTerritories: {
		victoriaDay,
		fixed("National Indigenous Peoples Day", time.June, 21),
	},
	model.Nunavut: {
		victoriaDay,
		fixed("Nunavut Day", time.July, 9),
	},
	model.Ontario: {
		familyDay,
		victoriaDay,
	},
	model.PrinceEdwardIsland: {
		nth("Islander Day", time.February, time.Monday, 3),
	},
	model.Saskatchewan: {
		familyDay,
		victoriaDay,
		nth("Saskatchewan Day", time.August, time.Monday, 1),
	},
	model.Yukon: {
		victoriaDay,
		fixed("National Indigenous Peoples Day", time.June, 21),
		nth("Discovery Day", time.August, time.Monday, 3),
	},
}

// quebec deliberately excludes Remembrance Day and Boxing Day and observes
// its provincial holidays instead.
var quebec = []holidayRule{
	fixed("New Year's Day", time.January, 1),
	easterRel("Good Friday", -2),
	onOrBefore("National Patriots' Day", time.May, 24, time.Monday),
	fixed("Saint-Jean-Baptiste Day", time.June, 24),
	fixed("Canada Day", time.July, 1),
	nth("Labour Day", time.September, time.Monday, 1),
	nth("Thanksgiving", time.October, time.Monday, 2),
	fixed("Christmas Day", time.December, 25),
}

// rulesByJurisdiction is the complete per-jurisdiction rule table,
// assembled once at process start.
var rulesByJurisdiction = func() map[model.JurisdictionCode][]holidayRule {
	m := make(map[model.JurisdictionCode][]holidayRule, len(model.Jurisdictions))
	for _, j := range model.Jurisdictions {
		if j.Code == model.Quebec {
			m[j.Code] = quebec
			continue
		}
		rules := make([]holidayRule, 0, len(national)+len(additions[j.Code]))
		rules = append(rules, national...)
		rules = append(rules, additions[j.Code]...)
		m[j.Code] = rules
	}
	return m
}()
