package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wetrack-hr/attendance-backend-go/internal/domain/report"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db  *database.DB
	loc *time.Location
}

// NewReportRepository builds the reporting queries. loc is the work-day
// timezone used when rendering clock instants as time-of-day strings.
func NewReportRepository(db *database.DB, loc *time.Location) report.ReportRepository {
	return &reportRepository{db: db, loc: loc}
}

func (r *reportRepository) GetDailyRows(ctx context.Context, date time.Time) ([]report.DailyReportRow, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.employee_code, e.name, e.department, e.position,
			a.id, a.clock_in, a.clock_out, a.status, a.work_duration_minutes,
			a.clock_in_address, a.clock_out_address, a.is_verified
		FROM employees e
		LEFT JOIN attendances a ON a.employee_id = e.id AND a.date = $1
		WHERE e.is_active = TRUE
		ORDER BY e.name ASC`

	rows, err := querier.Query(ctx, query, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query daily report: %w", err)
	}
	defer rows.Close()

	result := make([]report.DailyReportRow, 0)
	for rows.Next() {
		var row report.DailyReportRow
		var (
			recordID     *string
			clockIn      *time.Time
			clockOut     *time.Time
			status       *string
			workDuration *int
			inAddress    *string
			outAddress   *string
			isVerified   *bool
		)
		err := rows.Scan(
			&row.EmployeeID, &row.EmployeeCode, &row.Name, &row.Department, &row.Position,
			&recordID, &clockIn, &clockOut, &status, &workDuration,
			&inAddress, &outAddress, &isVerified,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily report row: %w", err)
		}

		if recordID == nil {
			row.Status = string(attendance.StatusAbsent)
		} else {
			row.Status = *status
			row.Attendance = &report.DailyAttendance{
				RecordID:        *recordID,
				ClockInTime:     r.formatTime(clockIn),
				ClockOutTime:    r.formatTime(clockOut),
				Status:          *status,
				WorkDuration:    workDuration,
				ClockInAddress:  inAddress,
				ClockOutAddress: outAddress,
				IsVerified:      *isVerified,
			}
		}

		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate daily report rows: %w", err)
	}

	return result, nil
}

func (r *reportRepository) GetMonthlyEmployeeTotals(ctx context.Context, year int, month time.Month) ([]report.MonthlyEmployeeTotals, error) {
	querier := GetQuerier(ctx, r.db)
	start, end := monthBounds(year, month)

	query := `
		SELECT e.id, e.employee_code, e.name, e.department, e.position,
			COUNT(a.id),
			COUNT(a.id) FILTER (WHERE a.status = 'present'),
			COUNT(a.id) FILTER (WHERE a.status = 'late'),
			COALESCE(SUM(a.work_duration_minutes), 0)
		FROM employees e
		LEFT JOIN attendances a
			ON a.employee_id = e.id AND a.date >= $1 AND a.date < $2
		WHERE e.is_active = TRUE
		GROUP BY e.id, e.employee_code, e.name, e.department, e.position
		ORDER BY e.name ASC`

	rows, err := querier.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly employee totals: %w", err)
	}
	defer rows.Close()

	result := make([]report.MonthlyEmployeeTotals, 0)
	for rows.Next() {
		var t report.MonthlyEmployeeTotals
		err := rows.Scan(
			&t.EmployeeID, &t.EmployeeCode, &t.Name, &t.Department, &t.Position,
			&t.TotalDays, &t.PresentDays, &t.LateDays, &t.TotalWorkMinutes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monthly employee totals: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly employee totals: %w", err)
	}

	return result, nil
}

func (r *reportRepository) GetMonthlyTotals(ctx context.Context, year int, month time.Month) (report.MonthlyTotals, error) {
	querier := GetQuerier(ctx, r.db)
	start, end := monthBounds(year, month)

	query := `
		SELECT COUNT(a.id),
			COUNT(a.id) FILTER (WHERE a.status = 'present'),
			COUNT(a.id) FILTER (WHERE a.status = 'late'),
			COALESCE(SUM(a.work_duration_minutes), 0)
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id AND e.is_active = TRUE
		WHERE a.date >= $1 AND a.date < $2`

	var totals report.MonthlyTotals
	err := querier.QueryRow(ctx, query, start, end).Scan(
		&totals.TotalRecords, &totals.PresentCount, &totals.LateCount, &totals.TotalWorkMinutes,
	)
	if err != nil {
		return report.MonthlyTotals{}, fmt.Errorf("failed to query monthly totals: %w", err)
	}

	return totals, nil
}

func (r *reportRepository) GetDayCounts(ctx context.Context, date time.Time) (report.DayCounts, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(a.id) FILTER (WHERE a.clock_in IS NOT NULL),
			COUNT(a.id) FILTER (WHERE a.status = 'late')
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id AND e.is_active = TRUE
		WHERE a.date = $1`

	var counts report.DayCounts
	err := querier.QueryRow(ctx, query, date.Format("2006-01-02")).Scan(&counts.ClockedIn, &counts.Late)
	if err != nil {
		return report.DayCounts{}, fmt.Errorf("failed to query day counts: %w", err)
	}

	return counts, nil
}

func (r *reportRepository) GetRecentActivity(ctx context.Context, date time.Time, limit int) ([]report.ActivityRow, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, e.name, a.status, a.clock_in, a.clock_out
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY a.updated_at DESC
		LIMIT $2`

	rows, err := querier.Query(ctx, query, date.Format("2006-01-02"), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent activity: %w", err)
	}
	defer rows.Close()

	return r.collectActivity(rows)
}

func (r *reportRepository) collectActivity(rows pgx.Rows) ([]report.ActivityRow, error) {
	result := make([]report.ActivityRow, 0)
	for rows.Next() {
		var row report.ActivityRow
		var clockIn, clockOut *time.Time
		if err := rows.Scan(&row.RecordID, &row.EmployeeName, &row.Status, &clockIn, &clockOut); err != nil {
			return nil, fmt.Errorf("failed to scan activity row: %w", err)
		}
		row.ClockInTime = r.formatTime(clockIn)
		row.ClockOutTime = r.formatTime(clockOut)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activity rows: %w", err)
	}
	return result, nil
}

func (r *reportRepository) formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.In(r.loc).Format("15:04:05")
	return &s
}

func monthBounds(year int, month time.Month) (string, string) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start.Format("2006-01-02"), start.AddDate(0, 1, 0).Format("2006-01-02")
}
