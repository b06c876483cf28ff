package report

import (
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// DAILY REPORT
// ========================================

type DailyReportRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, defaults to today
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != "" {
		if _, ok := validator.IsValidDate(r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DailyReport struct {
	Date      string           `json:"date"`
	Employees []DailyReportRow `json:"employees"`
	Stats     DailyStats       `json:"stats"`
}

// DailyReportRow covers one active employee. Attendance is nil when the
// employee has no record for the date, in which case Status is "absent".
type DailyReportRow struct {
	EmployeeID   string           `json:"employee_id"`
	EmployeeCode string           `json:"employee_code"`
	Name         string           `json:"name"`
	Department   *string          `json:"department,omitempty"`
	Position     *string          `json:"position,omitempty"`
	Attendance   *DailyAttendance `json:"attendance,omitempty"`
	Status       string           `json:"status"`
}

type DailyAttendance struct {
	RecordID        string  `json:"record_id"`
	ClockInTime     *string `json:"clock_in_time,omitempty"`
	ClockOutTime    *string `json:"clock_out_time,omitempty"`
	Status          string  `json:"status"`
	WorkDuration    *int    `json:"work_duration,omitempty"`
	ClockInAddress  *string `json:"clock_in_address,omitempty"`
	ClockOutAddress *string `json:"clock_out_address,omitempty"`
	IsVerified      bool    `json:"is_verified"`
}

type DailyStats struct {
	Total   int `json:"total"`
	Present int `json:"present"` // any status other than absent
	Late    int `json:"late"`
	Absent  int `json:"absent"`
}

// ========================================
// MONTHLY REPORT
// ========================================

type MonthlyReportRequest struct {
	Month string `json:"month"` // YYYY-MM, defaults to current month
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReport struct {
	Month     string             `json:"month"`
	MonthName string             `json:"month_name"`
	Employees []MonthlyReportRow `json:"employees"`
	Overview  MonthlyOverview    `json:"overview"`
}

type MonthlyReportRow struct {
	EmployeeID     string  `json:"employee_id"`
	EmployeeCode   string  `json:"employee_code"`
	Name           string  `json:"name"`
	Department     *string `json:"department,omitempty"`
	Position       *string `json:"position,omitempty"`
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	LateDays       int     `json:"late_days"`
	AbsentDays     int     `json:"absent_days"`
	AttendanceRate float64 `json:"attendance_rate"`
	TotalWorkHours float64 `json:"total_work_hours"`
}

// MonthlyOverview is the organization-wide summary. Rates are count-based,
// not averages of per-employee rates.
type MonthlyOverview struct {
	AttendanceRate   float64 `json:"attendance_rate"`
	PunctualityRate  float64 `json:"punctuality_rate"`
	TotalWorkHours   float64 `json:"total_work_hours"`
	AverageWorkHours float64 `json:"average_work_hours"`
}

// ========================================
// ADMIN DASHBOARD
// ========================================

type Dashboard struct {
	TodayStats       TodayStats      `json:"today_stats"`
	RecentActivities []ActivityRow   `json:"recent_activities"`
	MonthlyOverview  MonthlyOverview `json:"monthly_overview"`
}

type TodayStats struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	LateToday      int64 `json:"late_today"`
	AbsentToday    int64 `json:"absent_today"`
}

type ActivityRow struct {
	RecordID     string  `json:"record_id"`
	EmployeeName string  `json:"employee_name"`
	Status       string  `json:"status"`
	ClockInTime  *string `json:"clock_in_time,omitempty"`
	ClockOutTime *string `json:"clock_out_time,omitempty"`
}

// ========================================
// REPOSITORY-LEVEL AGGREGATES
// ========================================

// MonthlyEmployeeTotals is the raw per-employee aggregation scanned from the
// record store; derived fields (absent days, rates, hours) are computed by the
// service.
type MonthlyEmployeeTotals struct {
	EmployeeID       string
	EmployeeCode     string
	Name             string
	Department       *string
	Position         *string
	TotalDays        int
	PresentDays      int
	LateDays         int
	TotalWorkMinutes int
}

// MonthlyTotals aggregates the whole month across all employees.
type MonthlyTotals struct {
	TotalRecords     int64
	PresentCount     int64
	LateCount        int64
	TotalWorkMinutes int64
}

// DayCounts aggregates a single date across all employees.
type DayCounts struct {
	ClockedIn int64
	Late      int64
}
