package report

import "context"

// ReportService is the read-only aggregation layer over the record store.
type ReportService interface {
	// GetDailyReport lists every active employee with their record (or
	// "absent") for a date, plus daily totals.
	GetDailyReport(ctx context.Context, req DailyReportRequest) (DailyReport, error)

	// GetMonthlyReport aggregates per-employee and organization-wide
	// statistics for a calendar month.
	GetMonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)

	// GetDashboard combines today's counts, recent activity and the current
	// month's overview.
	GetDashboard(ctx context.Context) (Dashboard, error)
}
