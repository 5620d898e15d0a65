package report

import (
	"context"
)

// ReportService defines business logic for monthly attendance aggregation
type ReportService interface {
	// ComputeMonthly resolves every day of the month for the employee and
	// aggregates status counts and the prorated net pay
	ComputeMonthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
