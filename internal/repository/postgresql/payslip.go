package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendhq/attendance-backend-go/internal/domain/payroll"
	"github.com/attendhq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

func (r *payslipRepository) Create(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (employee_id, period_year, period_month, gross, deductions, net_salary, pdf_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, employee_id, period_year, period_month, gross, deductions, net_salary, pdf_url, generated_at
	`

	var p payroll.Payslip
	err := q.QueryRow(ctx, query,
		payslip.EmployeeID, payslip.PeriodYear, payslip.PeriodMonth,
		payslip.Gross, payslip.Deductions, payslip.NetSalary, payslip.PDFURL,
	).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodYear, &p.PeriodMonth,
		&p.Gross, &p.Deductions, &p.NetSalary, &p.PDFURL, &p.GeneratedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
		}
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, period payroll.Period) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period_year, period_month, gross, deductions, net_salary, pdf_url, generated_at
		FROM payslips
		WHERE employee_id = $1 AND period_year = $2 AND period_month = $3
	`

	var p payroll.Payslip
	err := q.QueryRow(ctx, query, employeeID, period.Year, period.Month).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodYear, &p.PeriodMonth,
		&p.Gross, &p.Deductions, &p.NetSalary, &p.PDFURL, &p.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}
