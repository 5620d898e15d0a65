// Package calendar decides whether a calendar date is a working day. The
// company convention: Sundays, 2nd/4th/5th Saturdays, and declared holidays
// are non-working.
package calendar

import (
	"time"
)

// Holiday is a declared non-working day. The set is fixed at startup and
// immutable at runtime.
type Holiday struct {
	Date  time.Time
	Title string
}

// Calendar answers non-working-day queries against a fixed holiday table.
type Calendar struct {
	holidays map[string]string // "2006-01-02" -> title
}

// New builds a Calendar from the declared holiday set.
func New(holidays []Holiday) *Calendar {
	table := make(map[string]string, len(holidays))
	for _, h := range holidays {
		table[h.Date.Format("2006-01-02")] = h.Title
	}
	return &Calendar{holidays: table}
}

// IsDeclaredHoliday looks the date up in the declared table and returns its
// title when found.
func (c *Calendar) IsDeclaredHoliday(date time.Time) (string, bool) {
	title, ok := c.holidays[date.Format("2006-01-02")]
	return title, ok
}

// IsSunday reports whether the date falls on a Sunday.
func IsSunday(date time.Time) bool {
	return date.Weekday() == time.Sunday
}

// SaturdayOrdinal returns which Saturday of its month the date is (1-based),
// or 0 if the date is not a Saturday. The ordinal is derived from the day of
// month alone: day 1-7 is the 1st occurrence, 8-14 the 2nd, and so on. This
// is the single authoritative rule; it also defines the 5th Saturday (day
// 29-31), which only some months have.
func SaturdayOrdinal(date time.Time) int {
	if date.Weekday() != time.Saturday {
		return 0
	}
	return (date.Day()-1)/7 + 1
}

// IsNthSaturday reports whether the date is the n-th Saturday of its month.
func IsNthSaturday(date time.Time, n int) bool {
	return SaturdayOrdinal(date) == n
}

// IsNonWorkingDay reports whether the date is a weekly off (Sunday or
// 2nd/4th/5th Saturday) or a declared holiday.
func (c *Calendar) IsNonWorkingDay(date time.Time) bool {
	if IsSunday(date) {
		return true
	}
	switch SaturdayOrdinal(date) {
	case 2, 4, 5:
		return true
	}
	_, declared := c.IsDeclaredHoliday(date)
	return declared
}

// DaysInMonth returns the number of calendar days in the month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
