package report

import (
	"fmt"
	"time"

	"github.com/attendhq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// MONTHLY ATTENDANCE REPORT
// ========================================

type MonthlyReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`
	Month      int    `json:"month"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if r.Year < 2020 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between 2020 and %d", currentYear+1),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayStatus struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type MonthlyReport struct {
	EmployeeID       string      `json:"employee_id"`
	PeriodYear       int         `json:"period_year"`
	PeriodMonth      int         `json:"period_month"`
	DaysInMonth      int         `json:"days_in_month"`
	DayStatuses      []DayStatus `json:"day_statuses"`
	PresentCount     int         `json:"present_count"`
	AbsentCount      int         `json:"absent_count"`
	LOPCount         int         `json:"lop_count"`
	TotalWorkingDays int         `json:"total_working_days"`
	NetPay           string      `json:"net_pay"`
}
