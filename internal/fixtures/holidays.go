package fixtures

import (
	"time"

	"github.com/attendhq/attendance-backend-go/internal/domain/calendar"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DeclaredHolidays is the fixed company holiday table for the current cycle.
// Movable-festival dates are entered for the specific year they fall in.
func DeclaredHolidays() []calendar.Holiday {
	return []calendar.Holiday{
		{Date: d(2026, time.January, 1), Title: "New Year's Day"},
		{Date: d(2026, time.January, 26), Title: "Republic Day"},
		{Date: d(2026, time.March, 4), Title: "Holi"},
		{Date: d(2026, time.May, 1), Title: "May Day"},
		{Date: d(2026, time.August, 15), Title: "Independence Day"},
		{Date: d(2026, time.October, 2), Title: "Gandhi Jayanti"},
		{Date: d(2026, time.November, 10), Title: "Diwali"},
		{Date: d(2026, time.December, 25), Title: "Christmas"},
	}
}
