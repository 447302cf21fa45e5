// Package busday implements jurisdiction-aware business-day arithmetic.
// A business day is a calendar day that is not a Saturday, not a Sunday,
// and not a statutory holiday in the given jurisdiction.
package busday

import (
	"fmt"
	"time"

	"jurisdiction-engine/internal/calendar"
	"jurisdiction-engine/internal/model"
)

// IsBusinessDay reports whether d is a business day in the jurisdiction.
func IsBusinessDay(code model.JurisdictionCode, d time.Time) (bool, error) {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		// Still validate the jurisdiction so weekends don't mask bad codes.
		if !model.ValidJurisdiction(code) {
			return false, fmt.Errorf("%w: %q", model.ErrInvalidJurisdiction, code)
		}
		return false, nil
	}
	holidays, err := calendar.DateSet(code, d.Year())
	if err != nil {
		return false, err
	}
	_, holiday := holidays[d]
	return !holiday, nil
}

// Add returns the nth business day strictly after start: the walk begins the
// day after start, so start itself is never counted. With n = 0 the start is
// returned unchanged when it is a business day, otherwise the next business
// day.
func Add(code model.JurisdictionCode, start time.Time, n int) (time.Time, error) {
	if n < 0 {
		return time.Time{}, fmt.Errorf("%w: business days must be non-negative, got %d", model.ErrInvalidArgument, n)
	}
	if n == 0 {
		return normalize(code, start, 1)
	}
	return walk(code, start, n, 1)
}

// Subtract mirrors Add, walking backward. Counting starts strictly before
// start; with n = 0 a non-business start normalizes to the previous
// business day.
func Subtract(code model.JurisdictionCode, start time.Time, n int) (time.Time, error) {
	if n < 0 {
		return time.Time{}, fmt.Errorf("%w: business days must be non-negative, got %d", model.ErrInvalidArgument, n)
	}
	if n == 0 {
		return normalize(code, start, -1)
	}
	return walk(code, start, n, -1)
}

// Count returns the number of business days in the inclusive range
// [start, end]. Count(d, d) is 1 when d is a business day, 0 otherwise.
func Count(code model.JurisdictionCode, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("%w: start %s after end %s",
			model.ErrInvalidRange, model.FormatDate(start), model.FormatDate(end))
	}

	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		business, err := IsBusinessDay(code, d)
		if err != nil {
			return 0, err
		}
		if business {
			count++
		}
	}
	return count, nil
}

// walk steps one calendar day at a time in the given direction, consuming a
// day for each business day encountered. Year boundaries are transparent:
// IsBusinessDay fetches the holiday set of whatever year the walk is in.
func walk(code model.JurisdictionCode, start time.Time, n, dir int) (time.Time, error) {
	d := start
	for consumed := 0; consumed < n; {
		d = d.AddDate(0, 0, dir)
		business, err := IsBusinessDay(code, d)
		if err != nil {
			return time.Time{}, err
		}
		if business {
			consumed++
		}
	}
	return d, nil
}

// normalize returns d itself when it is a business day, otherwise the
// nearest business day in the given direction.
func normalize(code model.JurisdictionCode, d time.Time, dir int) (time.Time, error) {
	for {
		business, err := IsBusinessDay(code, d)
		if err != nil {
			return time.Time{}, err
		}
		if business {
			return d, nil
		}
		d = d.AddDate(0, 0, dir)
	}
}
