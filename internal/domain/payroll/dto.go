package payroll

import (
	"github.com/attendhq/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// PAYROLL DTOs
// ========================================

type GenerateBatchRequest struct {
	EmployeeIDs []string `json:"employee_ids"`
	Period      string   `json:"period"`

	// BatchID identifies the progress stream; assigned by the handler.
	BatchID string `json:"-"`
}

func (r *GenerateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "employee_ids must not be empty",
		})
	}
	for _, id := range r.EmployeeIDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_ids",
				Message: "employee_ids must not contain blank entries",
			})
			break
		}
	}

	if !validator.IsValidPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employee_id"`
	Period      string `json:"period"`
	Gross       string `json:"gross"`
	Deductions  string `json:"deductions"`
	NetSalary   string `json:"net_salary"`
	PDFURL      string `json:"pdf_url"`
	GeneratedAt string `json:"generated_at"`
}
