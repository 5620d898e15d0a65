package attendance

import (
	"time"
)

// DayKey identifies one employee's attendance record for one calendar day.
// It replaces ad-hoc string concatenation of uid and date as a map key.
type DayKey struct {
	EmployeeID string
	Date       time.Time
}

// NewDayKey builds a DayKey with the date normalized to midnight UTC.
func NewDayKey(employeeID string, date time.Time) DayKey {
	return DayKey{EmployeeID: employeeID, Date: DateOf(date)}
}

// DateOf truncates a timestamp to its calendar day at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Session is a single check-in/check-out pair within a day. CheckOut is nil
// while the session is open; DurationMinutes stays 0 until it closes.
type Session struct {
	ID              string
	EmployeeID      string
	Date            time.Time
	CheckIn         time.Time
	CheckOut        *time.Time
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Open reports whether the session has no check-out yet.
func (s Session) Open() bool {
	return s.CheckOut == nil
}

// RunningMinutes returns the stored duration for a closed session, or the
// elapsed minutes against now for an open one. The running value is never
// persisted.
func (s Session) RunningMinutes(now time.Time) int {
	if s.CheckOut != nil {
		return s.DurationMinutes
	}
	return int(now.Sub(s.CheckIn) / time.Minute)
}

// DailyRecord is the ordered set of sessions for one (employee, date).
// Invariant: at most one session is open.
type DailyRecord struct {
	EmployeeID string
	Date       time.Time
	Sessions   []Session
}

// TotalMinutes sums the record's session durations against now: stored
// durations for closed sessions, elapsed time for an open one.
func (r DailyRecord) TotalMinutes(now time.Time) int {
	total := 0
	for _, s := range r.Sessions {
		total += s.RunningMinutes(now)
	}
	return total
}

// Override is the manually chosen status for one (employee, date) cell. It is
// a single-writer register: writes upsert, last writer wins, and it is never
// auto-deleted.
type Override struct {
	EmployeeID string
	Date       time.Time
	Status     Status
	UpdatedAt  time.Time
}
