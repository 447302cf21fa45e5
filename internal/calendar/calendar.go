package calendar

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"jurisdiction-engine/internal/model"
)

// yearCache memoizes resolved annual holiday sets. Values are immutable
// once stored, so concurrent readers need no locking.
var yearCache sync.Map

type yearKey struct {
	code model.JurisdictionCode
	year int
}

type yearHolidays struct {
	ordered []model.Holiday
	dates   map[time.Time]struct{}
}

func forYear(code model.JurisdictionCode, year int) (*yearHolidays, error) {
	rules, ok := rulesByJurisdiction[code]
	if !ok {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidJurisdiction, code)
	}

	key := yearKey{code, year}
	if cached, ok := yearCache.Load(key); ok {
		return cached.(*yearHolidays), nil
	}

	yh := &yearHolidays{
		ordered: make([]model.Holiday, 0, len(rules)),
		dates:   make(map[time.Time]struct{}, len(rules)),
	}
	for _, r := range rules {
		d := r.resolve(year)
		yh.ordered = append(yh.ordered, model.Holiday{
			Date:         model.FormatDate(d),
			Name:         r.name,
			Jurisdiction: code,
		})
		yh.dates[d] = struct{}{}
	}
	sort.Slice(yh.ordered, func(i, j int) bool {
		return yh.ordered[i].Date < yh.ordered[j].Date
	})

	yearCache.Store(key, yh)
	return yh, nil
}

// ForYear returns the jurisdiction's observed holidays for one year,
// ordered by date.
func ForYear(code model.JurisdictionCode, year int) ([]model.Holiday, error) {
	yh, err := forYear(code, year)
	if err != nil {
		return nil, err
	}
	return yh.ordered, nil
}

// InRange returns the jurisdiction's holidays within [start, end] inclusive,
// unioning the annual sets of every year the range touches.
func InRange(code model.JurisdictionCode, start, end time.Time) ([]model.Holiday, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start %s after end %s",
			model.ErrInvalidRange, model.FormatDate(start), model.FormatDate(end))
	}

	var out []model.Holiday
	startStr, endStr := model.FormatDate(start), model.FormatDate(end)
	for year := start.Year(); year <= end.Year(); year++ {
		yh, err := forYear(code, year)
		if err != nil {
			return nil, err
		}
		for _, h := range yh.ordered {
			if h.Date >= startStr && h.Date <= endStr {
				out = append(out, h)
			}
		}
	}
	return out, nil
}

// DateSet returns the jurisdiction's holiday dates for one year as a
// membership set for the business-day calculator. The returned map is
// shared and must not be mutated.
func DateSet(code model.JurisdictionCode, year int) (map[time.Time]struct{}, error) {
	yh, err := forYear(code, year)
	if err != nil {
		return nil, err
	}
	return yh.dates, nil
}
