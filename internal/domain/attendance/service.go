package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn opens a new session for the employee's current day
	CheckIn(ctx context.Context, req CheckInRequest) (SessionResponse, error)

	// CheckOut closes the employee's open session for the current day
	CheckOut(ctx context.Context, req CheckOutRequest) (SessionResponse, error)

	// GetDailyStatus returns the resolved status and session detail for a day
	GetDailyStatus(ctx context.Context, employeeID string, date string) (DailyStatusResponse, error)

	// Resolve computes the authoritative status for one (employee, date) cell
	Resolve(ctx context.Context, key DayKey) (Status, error)

	// SetOverride writes a manual status for a working day
	SetOverride(ctx context.Context, req SetOverrideRequest) (OverrideResponse, error)

	// CycleOverride advances the cell's status in the fixed P->A->LOP->SL order
	CycleOverride(ctx context.Context, req CycleOverrideRequest) (OverrideResponse, error)
}
