package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendhq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhq/attendance-backend-go/internal/domain/calendar"
	"github.com/attendhq/attendance-backend-go/internal/pkg/database"
	"github.com/attendhq/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	txm database.TxManager
	attendance.SessionRepository
	attendance.OverrideRepository
	cal *calendar.Calendar

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

func NewAttendanceService(
	txm database.TxManager,
	sessionRepo attendance.SessionRepository,
	overrideRepo attendance.OverrideRepository,
	cal *calendar.Calendar,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		txm:                txm,
		SessionRepository:  sessionRepo,
		OverrideRepository: overrideRepo,
		cal:                cal,
		now:                time.Now,
	}
}

// timePtrToString safely converts a *time.Time to an RFC 3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}

// toSessionResponse maps a session for the wire. An open session reports its
// elapsed minutes against now; a closed one reports the stored duration.
func toSessionResponse(s attendance.Session, now time.Time) attendance.SessionResponse {
	return attendance.SessionResponse{
		ID:              s.ID,
		CheckIn:         s.CheckIn.UTC().Format(time.RFC3339),
		CheckOut:        timePtrToString(s.CheckOut),
		DurationMinutes: s.RunningMinutes(now),
	}
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	nowUTC := a.now().UTC()
	key := attendance.NewDayKey(req.EmployeeID, nowUTC)

	var created attendance.Session
	err := a.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := a.SessionRepository.LockDay(ctx, key); err != nil {
			return err
		}

		open, err := a.SessionRepository.GetOpenSession(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to get open session: %w", err)
		}
		if open != nil {
			return attendance.ErrAlreadyCheckedIn
		}

		created, err = a.SessionRepository.Create(ctx, attendance.Session{
			EmployeeID: key.EmployeeID,
			Date:       key.Date,
			CheckIn:    nowUTC,
		})
		if err != nil {
			return fmt.Errorf("failed to create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return toSessionResponse(created, nowUTC), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SessionResponse{}, err
	}

	nowUTC := a.now().UTC()
	key := attendance.NewDayKey(req.EmployeeID, nowUTC)

	var closed attendance.Session
	err := a.txm.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := a.SessionRepository.LockDay(ctx, key); err != nil {
			return err
		}

		open, err := a.SessionRepository.GetOpenSession(ctx, key)
		if err != nil {
			return fmt.Errorf("failed to get open session: %w", err)
		}
		if open == nil {
			return attendance.ErrNotCheckedIn
		}

		// Duration is floored to whole minutes.
		duration := int(nowUTC.Sub(open.CheckIn) / time.Minute)
		if duration < 0 {
			duration = 0
		}

		open.CheckOut = &nowUTC
		open.DurationMinutes = duration

		if err := a.SessionRepository.Update(ctx, *open); err != nil {
			return fmt.Errorf("failed to close session: %w", err)
		}
		closed = *open
		return nil
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return toSessionResponse(closed, nowUTC), nil
}

// Resolve implements attendance.AttendanceService. Resolution order: holiday
// and weekly off dominate everything, then a manual override, then presence
// inferred from sessions, defaulting to absent.
func (a *AttendanceServiceImpl) Resolve(ctx context.Context, key attendance.DayKey) (attendance.Status, error) {
	if a.cal.IsNonWorkingDay(key.Date) {
		return attendance.StatusHoliday, nil
	}

	override, err := a.OverrideRepository.Get(ctx, key)
	if err == nil {
		return override.Status, nil
	}
	if !errors.Is(err, attendance.ErrOverrideNotFound) {
		return "", fmt.Errorf("failed to get override: %w", err)
	}

	hasSessions, err := a.SessionRepository.HasSessions(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to check sessions: %w", err)
	}
	if hasSessions {
		return attendance.StatusPresent, nil
	}

	return attendance.StatusAbsent, nil
}

// GetDailyStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetDailyStatus(ctx context.Context, employeeID string, date string) (attendance.DailyStatusResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return attendance.DailyStatusResponse{}, attendance.ErrInvalidDate
	}

	key := attendance.NewDayKey(employeeID, day)

	status, err := a.Resolve(ctx, key)
	if err != nil {
		return attendance.DailyStatusResponse{}, err
	}

	sessions, err := a.SessionRepository.ListByDay(ctx, key)
	if err != nil {
		return attendance.DailyStatusResponse{}, fmt.Errorf("failed to list sessions: %w", err)
	}

	nowUTC := a.now().UTC()
	record := attendance.DailyRecord{EmployeeID: employeeID, Date: key.Date, Sessions: sessions}

	resp := attendance.DailyStatusResponse{
		EmployeeID:   employeeID,
		Date:         key.Date.Format("2006-01-02"),
		Status:       string(status),
		StatusLabel:  status.Label(),
		Sessions:     make([]attendance.SessionResponse, 0, len(sessions)),
		TotalMinutes: record.TotalMinutes(nowUTC),
	}
	for _, s := range sessions {
		resp.Sessions = append(resp.Sessions, toSessionResponse(s, nowUTC))
	}

	return resp, nil
}

// SetOverride implements attendance.AttendanceService. Non-working days are
// immutable: the write is rejected before it reaches the store.
func (a *AttendanceServiceImpl) SetOverride(ctx context.Context, req attendance.SetOverrideRequest) (attendance.OverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.OverrideResponse{}, err
	}

	day, _ := validator.IsValidDate(req.Date)
	key := attendance.NewDayKey(req.EmployeeID, day)

	if a.cal.IsNonWorkingDay(key.Date) {
		return attendance.OverrideResponse{}, attendance.ErrHolidayImmutable
	}

	status, err := attendance.ParseStatus(req.Status)
	if err != nil {
		return attendance.OverrideResponse{}, err
	}

	saved, err := a.OverrideRepository.Upsert(ctx, attendance.Override{
		EmployeeID: key.EmployeeID,
		Date:       key.Date,
		Status:     status,
	})
	if err != nil {
		return attendance.OverrideResponse{}, fmt.Errorf("failed to save override: %w", err)
	}

	return toOverrideResponse(saved), nil
}

// CycleOverride implements attendance.AttendanceService. Cycling a holiday is
// a no-op that reports the holiday back unchanged.
func (a *AttendanceServiceImpl) CycleOverride(ctx context.Context, req attendance.CycleOverrideRequest) (attendance.OverrideResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.OverrideResponse{}, err
	}

	day, _ := validator.IsValidDate(req.Date)
	key := attendance.NewDayKey(req.EmployeeID, day)

	if a.cal.IsNonWorkingDay(key.Date) {
		return attendance.OverrideResponse{
			EmployeeID: key.EmployeeID,
			Date:       key.Date.Format("2006-01-02"),
			Status:     string(attendance.StatusHoliday),
		}, nil
	}

	current, err := a.Resolve(ctx, key)
	if err != nil {
		return attendance.OverrideResponse{}, err
	}
	if !current.Cyclable() {
		return attendance.OverrideResponse{}, attendance.ErrStatusNotCyclable
	}

	saved, err := a.OverrideRepository.Upsert(ctx, attendance.Override{
		EmployeeID: key.EmployeeID,
		Date:       key.Date,
		Status:     current.Cycle(),
	})
	if err != nil {
		return attendance.OverrideResponse{}, fmt.Errorf("failed to save override: %w", err)
	}

	return toOverrideResponse(saved), nil
}

func toOverrideResponse(o attendance.Override) attendance.OverrideResponse {
	return attendance.OverrideResponse{
		EmployeeID: o.EmployeeID,
		Date:       o.Date.Format("2006-01-02"),
		Status:     string(o.Status),
	}
}
