package payroll

import (
	"context"
)

// PayrollService defines business logic for payslip generation
type PayrollService interface {
	// GenerateBatch generates payslips for the given employees sequentially.
	// An upstream failure aborts the remainder; already-persisted payslips
	// are kept and the partial result is returned alongside the error, so
	// re-invoking the same batch is always safe.
	GenerateBatch(ctx context.Context, req GenerateBatchRequest) (BatchResult, error)

	// GetPayslip retrieves a stored payslip for (employee, period)
	GetPayslip(ctx context.Context, employeeID string, period string) (PayslipResponse, error)
}
