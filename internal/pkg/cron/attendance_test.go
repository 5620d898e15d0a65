package cron

import (
	"context"
	"testing"
	"time"

	"github.com/attendhq/attendance-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSessionRepo struct {
	sessions []attendance.Session
	updated  []attendance.Session
}

func (r *stubSessionRepo) LockDay(ctx context.Context, key attendance.DayKey) error {
	return nil
}

func (r *stubSessionRepo) Create(ctx context.Context, s attendance.Session) (attendance.Session, error) {
	r.sessions = append(r.sessions, s)
	return s, nil
}

func (r *stubSessionRepo) Update(ctx context.Context, s attendance.Session) error {
	r.updated = append(r.updated, s)
	return nil
}

func (r *stubSessionRepo) GetOpenSession(ctx context.Context, key attendance.DayKey) (*attendance.Session, error) {
	return nil, nil
}

func (r *stubSessionRepo) ListByDay(ctx context.Context, key attendance.DayKey) ([]attendance.Session, error) {
	return nil, nil
}

func (r *stubSessionRepo) HasSessions(ctx context.Context, key attendance.DayKey) (bool, error) {
	return false, nil
}

func (r *stubSessionRepo) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]attendance.Session, error) {
	var out []attendance.Session
	for _, s := range r.sessions {
		if s.CheckOut == nil && s.Date.Before(cutoff) {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestAutoCloseStaleSessions(t *testing.T) {
	yesterday := attendance.DateOf(time.Now().Add(-24 * time.Hour))
	today := attendance.DateOf(time.Now())

	repo := &stubSessionRepo{sessions: []attendance.Session{
		{ID: "s1", EmployeeID: "u1", Date: yesterday, CheckIn: yesterday.Add(9 * time.Hour)},
		{ID: "s2", EmployeeID: "u2", Date: today, CheckIn: today.Add(9 * time.Hour)},
	}}

	jobs := NewAttendanceJobs(repo)
	require.NoError(t, jobs.AutoCloseStaleSessions(context.Background()))

	// Only the session from a past day is closed, at the end of its own day.
	require.Len(t, repo.updated, 1)
	closed := repo.updated[0]
	assert.Equal(t, "s1", closed.ID)
	require.NotNil(t, closed.CheckOut)
	assert.Equal(t, yesterday.Add(24*time.Hour), *closed.CheckOut)
	assert.Equal(t, 15*60, closed.DurationMinutes)
}

func TestAutoCloseStaleSessionsNothingOpen(t *testing.T) {
	repo := &stubSessionRepo{}
	jobs := NewAttendanceJobs(repo)

	require.NoError(t, jobs.AutoCloseStaleSessions(context.Background()))
	assert.Empty(t, repo.updated)
}
