package attendance

import (
	"github.com/attendhq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SetOverrideRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *SetOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	status, err := ParseStatus(r.Status)
	if err != nil || !status.Cyclable() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of P, A, LOP, SL",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CycleOverrideRequest struct {
	EmployeeID string `json:"-"`
	Date       string `json:"date"`
}

func (r *CycleOverrideRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SessionResponse struct {
	ID              string  `json:"id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        *string `json:"check_out"`
	DurationMinutes int     `json:"duration_minutes"`
}

type DailyStatusResponse struct {
	EmployeeID   string            `json:"employee_id"`
	Date         string            `json:"date"`
	Status       string            `json:"status"`
	StatusLabel  string            `json:"status_label"`
	Sessions     []SessionResponse `json:"sessions"`
	TotalMinutes int               `json:"total_minutes"`
}

type OverrideResponse struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}
