package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure - per-employee salary components
type SalaryStructure struct {
	EmployeeID       string
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	SpecialAllowance decimal.Decimal
	PF               decimal.Decimal
	PT               decimal.Decimal
	TDS              decimal.Decimal
	BankAccount      string
	PAN              string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Gross is basic + HRA + special allowance.
func (s SalaryStructure) Gross() decimal.Decimal {
	return s.Basic.Add(s.HRA).Add(s.SpecialAllowance)
}

// Deductions is PF + PT + TDS.
func (s SalaryStructure) Deductions() decimal.Decimal {
	return s.PF.Add(s.PT).Add(s.TDS)
}

// Net is gross minus deductions, rounded to whole currency units.
func (s SalaryStructure) Net() decimal.Decimal {
	return s.Gross().Sub(s.Deductions()).Round(0)
}

// Period is a payroll month.
type Period struct {
	Year  int
	Month time.Month
}

// ParsePeriod parses a "YYYY-MM" period string.
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, s)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// Payslip - generated salary record, at most one per (employee, period).
// Immutable once created; there is no update or delete path.
type Payslip struct {
	ID          string
	EmployeeID  string
	PeriodYear  int
	PeriodMonth int
	Gross       decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	PDFURL      string
	GeneratedAt time.Time
}

// BatchOutcome enum
type BatchOutcome string

const (
	OutcomeGenerated         BatchOutcome = "generated"
	OutcomeAlreadyExists     BatchOutcome = "skipped_already_exists"
	OutcomeNoSalaryStructure BatchOutcome = "skipped_no_salary_structure"
)

// BatchItemResult is one progress step of a generation batch.
type BatchItemResult struct {
	Processed  int          `json:"processed"`
	Total      int          `json:"total"`
	EmployeeID string       `json:"employee_id"`
	Outcome    BatchOutcome `json:"outcome"`
}

// BatchResult summarizes a finished (or aborted) generation batch.
type BatchResult struct {
	BatchID   string            `json:"batch_id"`
	Total     int               `json:"total"`
	Processed int               `json:"processed"`
	Items     []BatchItemResult `json:"items"`
}
