// Package calendar generates per-jurisdiction statutory holiday sets.
// Each jurisdiction's holidays are declared as data (rule variants below)
// and resolved by a small interpreter, so new jurisdictions are pure data.
package calendar

import "time"

type ruleKind int

const (
	// fixedDate: the same month/day every year (e.g. Canada Day, July 1).
	fixedDate ruleKind = iota
	// nthWeekdayOfMonth: e.g. "third Monday of February" (Family Day).
	nthWeekdayOfMonth
	// weekdayOnOrBefore: e.g. "Monday on or before May 24" (Victoria Day).
	weekdayOnOrBefore
	// easterOffset: a signed day offset from Easter Sunday (Good Friday = -2).
	easterOffset
)

type holidayRule struct {
	name    string
	kind    ruleKind
	month   time.Month
	day     int          // fixedDate: the day; weekdayOnOrBefore: the anchor day
	weekday time.Weekday // nthWeekdayOfMonth, weekdayOnOrBefore
	nth     int          // nthWeekdayOfMonth: 1 = first
	offset  int          // easterOffset: days from Easter Sunday
}

// resolve interprets the rule for one year.
func (r holidayRule) resolve(year int) time.Time {
	switch r.kind {
	case fixedDate:
		return time.Date(year, r.month, r.day, 0, 0, 0, 0, time.UTC)
	case nthWeekdayOfMonth:
		return nthWeekday(year, r.month, r.weekday, r.nth)
	case weekdayOnOrBefore:
		anchor := time.Date(year, r.month, r.day, 0, 0, 0, 0, time.UTC)
		back := (int(anchor.Weekday()) - int(r.weekday) + 7) % 7
		return anchor.AddDate(0, 0, -back)
	case easterOffset:
		return easterSunday(year).AddDate(0, 0, r.offset)
	}
	return time.Time{}
}

func fixed(name string, month time.Month, day int) holidayRule {
	return holidayRule{name: name, kind: fixedDate, month: month, day: day}
}

func nth(name string, month time.Month, weekday time.Weekday, n int) holidayRule {
	return holidayRule{name: name, kind: nthWeekdayOfMonth, month: month, weekday: weekday, nth: n}
}

func onOrBefore(name string, month time.Month, day int, weekday time.Weekday) holidayRule {
	return holidayRule{name: name, kind: weekdayOnOrBefore, month: month, day: day, weekday: weekday}
}

func easterRel(name string, offset int) holidayRule {
	return holidayRule{name: name, kind: easterOffset, offset: offset}
}

// nthWeekday returns the nth occurrence of a weekday within a month.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	ahead := (int(weekday) - int(first.Weekday()) + 7) % 7
	return first.AddDate(0, 0, ahead+(n-1)*7)
}

// easterSunday computes Easter for the Gregorian calendar
// (Meeus/Jones/Butcher algorithm).
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
