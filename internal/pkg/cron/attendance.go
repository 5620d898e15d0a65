package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendhq/attendance-backend-go/internal/domain/attendance"
)

// AttendanceJobs holds scheduled maintenance for attendance sessions.
type AttendanceJobs struct {
	sessionRepo attendance.SessionRepository
}

func NewAttendanceJobs(sessionRepo attendance.SessionRepository) *AttendanceJobs {
	return &AttendanceJobs{sessionRepo: sessionRepo}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_stale_sessions", 1*time.Hour, j.AutoCloseStaleSessions)
}

// AutoCloseStaleSessions closes sessions whose day has passed without a
// check-out. The session is closed at the end of its own day so the stored
// duration never bleeds into the next day.
func (j *AttendanceJobs) AutoCloseStaleSessions(ctx context.Context) error {
	startOfToday := attendance.DateOf(time.Now())

	stale, err := j.sessionRepo.ListOpenBefore(ctx, startOfToday)
	if err != nil {
		return fmt.Errorf("failed to list stale open sessions: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	closedCount := 0
	for _, session := range stale {
		closeAt := session.Date.Add(24 * time.Hour)

		duration := int(closeAt.Sub(session.CheckIn) / time.Minute)
		if duration < 0 {
			duration = 0
		}

		session.CheckOut = &closeAt
		session.DurationMinutes = duration

		if err := j.sessionRepo.Update(ctx, session); err != nil {
			slog.Error("Cron: Failed to auto-close session",
				"session_id", session.ID,
				"employee_id", session.EmployeeID,
				"error", err)
			continue
		}

		closedCount++
	}

	slog.Info("Cron: Auto-closed stale sessions", "count", closedCount)
	return nil
}
