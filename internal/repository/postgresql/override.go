package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendhq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type overrideRepository struct {
	db *database.DB
}

func NewOverrideRepository(db *database.DB) attendance.OverrideRepository {
	return &overrideRepository{db: db}
}

func (r *overrideRepository) Get(ctx context.Context, key attendance.DayKey) (attendance.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, work_date, status, updated_at
		FROM attendance_overrides
		WHERE employee_id = $1 AND work_date = $2
	`

	var o attendance.Override
	var rawStatus string
	err := q.QueryRow(ctx, query, key.EmployeeID, key.Date).Scan(
		&o.EmployeeID, &o.Date, &rawStatus, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Override{}, attendance.ErrOverrideNotFound
		}
		return attendance.Override{}, fmt.Errorf("failed to get override: %w", err)
	}

	o.Status, err = attendance.ParseStatus(rawStatus)
	if err != nil {
		return attendance.Override{}, fmt.Errorf("failed to parse stored override: %w", err)
	}

	return o, nil
}

func (r *overrideRepository) Upsert(ctx context.Context, override attendance.Override) (attendance.Override, error) {
	q := GetQuerier(ctx, r.db)

	// One register per (employee, date) cell; last writer wins.
	query := `
		INSERT INTO attendance_overrides (employee_id, work_date, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, work_date) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING employee_id, work_date, status, updated_at
	`

	var o attendance.Override
	var rawStatus string
	err := q.QueryRow(ctx, query,
		override.EmployeeID, override.Date, string(override.Status),
	).Scan(
		&o.EmployeeID, &o.Date, &rawStatus, &o.UpdatedAt,
	)
	if err != nil {
		return attendance.Override{}, fmt.Errorf("failed to upsert override: %w", err)
	}

	o.Status, err = attendance.ParseStatus(rawStatus)
	if err != nil {
		return attendance.Override{}, fmt.Errorf("failed to parse stored override: %w", err)
	}

	return o, nil
}
