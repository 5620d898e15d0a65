package payroll

import "errors"

var (
	ErrPayslipNotFound         = errors.New("payslip not found")
	ErrPayslipAlreadyExists    = errors.New("payslip already exists for this period")
	ErrSalaryStructureNotFound = errors.New("salary structure not found for employee")
	ErrInvalidPeriod           = errors.New("invalid payroll period")
)
