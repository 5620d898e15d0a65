package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendhq/attendance-backend-go/internal/domain/attendance"
	"github.com/attendhq/attendance-backend-go/internal/domain/calendar"
	"github.com/attendhq/attendance-backend-go/internal/domain/payroll"
	"github.com/attendhq/attendance-backend-go/internal/domain/report"
	"github.com/shopspring/decimal"
)

// StatusResolver is the slice of the attendance service the aggregator needs.
type StatusResolver interface {
	Resolve(ctx context.Context, key attendance.DayKey) (attendance.Status, error)
}

type ReportServiceImpl struct {
	resolver StatusResolver
	payroll.SalaryStructureRepository
	cal *calendar.Calendar
}

func NewReportService(
	resolver StatusResolver,
	salaryRepo payroll.SalaryStructureRepository,
	cal *calendar.Calendar,
) report.ReportService {
	return &ReportServiceImpl{
		resolver:                  resolver,
		SalaryStructureRepository: salaryRepo,
		cal:                       cal,
	}
}

// ComputeMonthly implements report.ReportService. Every day of the month is
// resolved through the same path the daily status endpoint uses, so the
// report can never disagree with the per-day view.
func (r *ReportServiceImpl) ComputeMonthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	month := time.Month(req.Month)
	daysInMonth := calendar.DaysInMonth(req.Year, month)

	result := report.MonthlyReport{
		EmployeeID:  req.EmployeeID,
		PeriodYear:  req.Year,
		PeriodMonth: req.Month,
		DaysInMonth: daysInMonth,
		DayStatuses: make([]report.DayStatus, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(req.Year, month, day, 0, 0, 0, 0, time.UTC)
		key := attendance.NewDayKey(req.EmployeeID, date)

		status, err := r.resolver.Resolve(ctx, key)
		if err != nil {
			return report.MonthlyReport{}, fmt.Errorf("failed to resolve %s: %w", date.Format("2006-01-02"), err)
		}

		result.DayStatuses = append(result.DayStatuses, report.DayStatus{
			Date:   date.Format("2006-01-02"),
			Status: string(status),
		})

		switch status {
		case attendance.StatusPresent:
			result.PresentCount++
		case attendance.StatusAbsent:
			result.AbsentCount++
		case attendance.StatusLossOfPay:
			result.LOPCount++
		}
		if status != attendance.StatusHoliday {
			result.TotalWorkingDays++
		}
	}

	netPay, err := r.netPay(ctx, req.EmployeeID, daysInMonth, result.PresentCount)
	if err != nil {
		return report.MonthlyReport{}, err
	}
	result.NetPay = netPay

	return result, nil
}

// netPay prorates the monthly gross by present days: round(gross / daysInMonth
// * presentCount). An employee without a salary structure reports zero pay
// rather than failing the whole report.
func (r *ReportServiceImpl) netPay(ctx context.Context, employeeID string, daysInMonth, presentCount int) (string, error) {
	structure, err := r.SalaryStructureRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, payroll.ErrSalaryStructureNotFound) {
			return "0", nil
		}
		return "", fmt.Errorf("failed to get salary structure: %w", err)
	}

	pay := structure.Gross().
		Div(decimal.NewFromInt(int64(daysInMonth))).
		Mul(decimal.NewFromInt(int64(presentCount))).
		Round(0)

	return pay.String(), nil
}
