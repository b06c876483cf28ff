package report

import (
	"context"
	"time"
)

// ReportRepository defines the read-only queries behind the reporting engine.
type ReportRepository interface {
	// GetDailyRows returns one row per active employee, joined with their
	// record for the date when one exists.
	GetDailyRows(ctx context.Context, date time.Time) ([]DailyReportRow, error)

	// GetMonthlyEmployeeTotals returns per-employee aggregates for the month,
	// one row per active employee (zeroes when no records).
	GetMonthlyEmployeeTotals(ctx context.Context, year int, month time.Month) ([]MonthlyEmployeeTotals, error)

	// GetMonthlyTotals returns month-wide aggregates across all employees.
	GetMonthlyTotals(ctx context.Context, year int, month time.Month) (MonthlyTotals, error)

	// GetDayCounts returns clocked-in and late counts for a date.
	GetDayCounts(ctx context.Context, date time.Time) (DayCounts, error)

	// GetRecentActivity returns the latest records for a date, newest first.
	GetRecentActivity(ctx context.Context, date time.Time, limit int) ([]ActivityRow, error)
}
