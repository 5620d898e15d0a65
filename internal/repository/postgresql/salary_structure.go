package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendhq/attendance-backend-go/internal/domain/payroll"
	"github.com/attendhq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type salaryStructureRepository struct {
	db *database.DB
}

func NewSalaryStructureRepository(db *database.DB) payroll.SalaryStructureRepository {
	return &salaryStructureRepository{db: db}
}

func (r *salaryStructureRepository) GetByEmployeeID(ctx context.Context, employeeID string) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, basic, hra, special_allowance, pf, pt, tds, bank_account, pan, created_at, updated_at
		FROM salary_structures
		WHERE employee_id = $1
	`

	var s payroll.SalaryStructure
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.EmployeeID, &s.Basic, &s.HRA, &s.SpecialAllowance, &s.PF, &s.PT, &s.TDS,
		&s.BankAccount, &s.PAN, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrSalaryStructureNotFound
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure: %w", err)
	}

	return s, nil
}
