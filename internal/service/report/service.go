package report

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wetrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wetrack-hr/attendance-backend-go/internal/domain/report"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/clock"
)

const recentActivityLimit = 10

type ReportServiceImpl struct {
	report.ReportRepository
	employee.EmployeeRepository
	clock clock.Clock
	loc   *time.Location
}

func NewReportService(
	reports report.ReportRepository,
	employees employee.EmployeeRepository,
	clk clock.Clock,
	loc *time.Location,
) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository:   reports,
		EmployeeRepository: employees,
		clock:              clk,
		loc:                loc,
	}
}

// GetDailyReport implements report.ReportService.
func (s *ReportServiceImpl) GetDailyReport(ctx context.Context, req report.DailyReportRequest) (report.DailyReport, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReport{}, err
	}

	date := s.today()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return report.DailyReport{}, fmt.Errorf("failed to parse date: %w", err)
		}
		date = parsed
	}

	rows, err := s.ReportRepository.GetDailyRows(ctx, date)
	if err != nil {
		return report.DailyReport{}, err
	}

	stats := report.DailyStats{Total: len(rows)}
	for _, row := range rows {
		switch {
		case row.Attendance == nil || row.Status == string(attendance.StatusAbsent):
			stats.Absent++
		default:
			stats.Present++
			if row.Status == string(attendance.StatusLate) {
				stats.Late++
			}
		}
	}

	return report.DailyReport{
		Date:      date.Format("2006-01-02"),
		Employees: rows,
		Stats:     stats,
	}, nil
}

// GetMonthlyReport implements report.ReportService.
func (s *ReportServiceImpl) GetMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	local := s.clock.Now().In(s.loc)
	year, month := local.Year(), local.Month()
	if req.Month != "" {
		parsed, err := time.Parse("2006-01", req.Month)
		if err != nil {
			return report.MonthlyReport{}, fmt.Errorf("failed to parse month: %w", err)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	var (
		perEmployee []report.MonthlyEmployeeTotals
		totals      report.MonthlyTotals
		activeCount int64
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		perEmployee, err = s.ReportRepository.GetMonthlyEmployeeTotals(gCtx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.ReportRepository.GetMonthlyTotals(gCtx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		activeCount, err = s.EmployeeRepository.CountActive(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return report.MonthlyReport{}, err
	}

	daysInMonth := daysIn(year, month)
	rows := make([]report.MonthlyReportRow, 0, len(perEmployee))
	for _, t := range perEmployee {
		row := report.MonthlyReportRow{
			EmployeeID:     t.EmployeeID,
			EmployeeCode:   t.EmployeeCode,
			Name:           t.Name,
			Department:     t.Department,
			Position:       t.Position,
			TotalDays:      t.TotalDays,
			PresentDays:    t.PresentDays,
			LateDays:       t.LateDays,
			AbsentDays:     daysInMonth - t.TotalDays,
			TotalWorkHours: round1(float64(t.TotalWorkMinutes) / 60),
		}
		if daysInMonth > 0 {
			row.AttendanceRate = round1(float64(t.TotalDays) / float64(daysInMonth) * 100)
		}
		rows = append(rows, row)
	}

	return report.MonthlyReport{
		Month:     fmt.Sprintf("%04d-%02d", year, month),
		MonthName: time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006"),
		Employees: rows,
		Overview:  overview(totals, activeCount, daysInMonth),
	}, nil
}

// GetDashboard implements report.ReportService.
func (s *ReportServiceImpl) GetDashboard(ctx context.Context) (report.Dashboard, error) {
	today := s.today()
	local := s.clock.Now().In(s.loc)
	year, month := local.Year(), local.Month()

	var (
		activeCount int64
		dayCounts   report.DayCounts
		activities  []report.ActivityRow
		totals      report.MonthlyTotals
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		activeCount, err = s.EmployeeRepository.CountActive(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		dayCounts, err = s.ReportRepository.GetDayCounts(gCtx, today)
		return err
	})
	g.Go(func() error {
		var err error
		activities, err = s.ReportRepository.GetRecentActivity(gCtx, today, recentActivityLimit)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.ReportRepository.GetMonthlyTotals(gCtx, year, month)
		return err
	})

	if err := g.Wait(); err != nil {
		return report.Dashboard{}, err
	}

	return report.Dashboard{
		TodayStats: report.TodayStats{
			TotalEmployees: activeCount,
			PresentToday:   dayCounts.ClockedIn,
			LateToday:      dayCounts.Late,
			AbsentToday:    activeCount - dayCounts.ClockedIn,
		},
		RecentActivities: activities,
		MonthlyOverview:  overview(totals, activeCount, daysIn(year, month)),
	}, nil
}

// overview derives the organization-wide monthly rates. Every division is
// zero-guarded to 0 so an empty month reports flat zeroes.
func overview(totals report.MonthlyTotals, activeCount int64, daysInMonth int) report.MonthlyOverview {
	o := report.MonthlyOverview{
		TotalWorkHours: round1(float64(totals.TotalWorkMinutes) / 60),
	}

	expected := activeCount * int64(daysInMonth)
	if expected > 0 {
		o.AttendanceRate = round1(float64(totals.TotalRecords) / float64(expected) * 100)
	}
	if totals.TotalRecords > 0 {
		o.PunctualityRate = round1(float64(totals.PresentCount) / float64(totals.TotalRecords) * 100)
		o.AverageWorkHours = round1(float64(totals.TotalWorkMinutes) / 60 / float64(totals.TotalRecords))
	}

	return o
}

func (s *ReportServiceImpl) today() time.Time {
	local := s.clock.Now().In(s.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
