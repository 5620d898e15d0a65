package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in/check-out state errors
	ErrAlreadyCheckedIn = errors.New("you have already checked in")
	ErrNotCheckedIn     = errors.New("you have not checked in yet")

	// Override errors
	ErrInvalidStatus     = errors.New("invalid attendance status")
	ErrInvalidDate       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrHolidayImmutable  = errors.New("cannot override a holiday or weekly off day")
	ErrStatusNotCyclable = errors.New("status is not manually overridable")
	ErrOverrideNotFound  = errors.New("override not found")
	ErrSessionNotFound   = errors.New("attendance session not found")
)
