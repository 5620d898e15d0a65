package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendhq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhq/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepository struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) LockDay(ctx context.Context, key attendance.DayKey) error {
	q := GetQuerier(ctx, r.db)

	// Transaction-scoped advisory lock keyed on (employee, day). Released
	// automatically at commit or rollback.
	lockKey := key.EmployeeID + ":" + key.Date.Format("2006-01-02")
	if _, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, lockKey); err != nil {
		return fmt.Errorf("failed to lock attendance day: %w", err)
	}

	return nil
}

func (r *sessionRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (employee_id, work_date, check_in, check_out, duration_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, employee_id, work_date, check_in, check_out, duration_minutes, created_at, updated_at
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query,
		session.EmployeeID, session.Date, session.CheckIn, session.CheckOut, session.DurationMinutes,
	).Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.CheckIn, &s.CheckOut, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return attendance.Session{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	return s, nil
}

func (r *sessionRepository) Update(ctx context.Context, session attendance.Session) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET check_out = $1, duration_minutes = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, session.CheckOut, session.DurationMinutes, session.ID)
	if err != nil {
		return fmt.Errorf("failed to update attendance session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrSessionNotFound
	}

	return nil
}

func (r *sessionRepository) GetOpenSession(ctx context.Context, key attendance.DayKey) (*attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	// FOR UPDATE pins the open row against writers that do not take the
	// day advisory lock, such as the stale-session cron.
	query := `
		SELECT id, employee_id, work_date, check_in, check_out, duration_minutes, created_at, updated_at
		FROM attendance_sessions
		WHERE employee_id = $1 AND work_date = $2 AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT 1
		FOR UPDATE
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, key.EmployeeID, key.Date).Scan(
		&s.ID, &s.EmployeeID, &s.Date, &s.CheckIn, &s.CheckOut, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open session: %w", err)
	}

	return &s, nil
}

func (r *sessionRepository) ListByDay(ctx context.Context, key attendance.DayKey) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, check_in, check_out, duration_minutes, created_at, updated_at
		FROM attendance_sessions
		WHERE employee_id = $1 AND work_date = $2
		ORDER BY check_in ASC
	`

	rows, err := q.Query(ctx, query, key.EmployeeID, key.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Date, &s.CheckIn, &s.CheckOut, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}

func (r *sessionRepository) HasSessions(ctx context.Context, key attendance.DayKey) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_sessions
			WHERE employee_id = $1 AND work_date = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, key.EmployeeID, key.Date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check sessions: %w", err)
	}

	return exists, nil
}

func (r *sessionRepository) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, work_date, check_in, check_out, duration_minutes, created_at, updated_at
		FROM attendance_sessions
		WHERE check_out IS NULL AND work_date < $1
		ORDER BY work_date ASC, check_in ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list open sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.Date, &s.CheckIn, &s.CheckOut, &s.DurationMinutes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, nil
}
