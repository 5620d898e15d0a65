package payroll

import (
	"context"
)

// PayslipRepository defines data access for generated payslips.
type PayslipRepository interface {
	// Create inserts a payslip; a duplicate (employee, period) returns
	// ErrPayslipAlreadyExists
	Create(ctx context.Context, payslip Payslip) (Payslip, error)

	// GetByEmployeeAndPeriod retrieves a payslip or ErrPayslipNotFound
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, period Period) (Payslip, error)
}

// SalaryStructureRepository defines data access for salary structures.
type SalaryStructureRepository interface {
	// GetByEmployeeID retrieves the employee's salary structure or
	// ErrSalaryStructureNotFound
	GetByEmployeeID(ctx context.Context, employeeID string) (SalaryStructure, error)
}
