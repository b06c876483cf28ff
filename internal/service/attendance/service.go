package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wetrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/clock"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/database"
	"github.com/wetrack-hr/attendance-backend-go/internal/repository/postgresql"
)

// lateCutoffHour is the start of the "late" window: a clock-in strictly after
// 09:00:00 local time marks the day late.
const (
	lateCutoffHour   = 9
	lateCutoffMinute = 0

	recentRecordLimit = 5
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.RecordRepository
	attendance.EventRepository
	employee.EmployeeRepository
	clock clock.Clock
	loc   *time.Location
}

func NewAttendanceService(
	db *database.DB,
	records attendance.RecordRepository,
	events attendance.EventRepository,
	employees employee.EmployeeRepository,
	clk clock.Clock,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                 db,
		RecordRepository:   records,
		EventRepository:    events,
		EmployeeRepository: employees,
		clock:              clk,
		loc:                loc,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// Clock implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Clock(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if !emp.IsActive {
		return attendance.RecordResponse{}, employee.ErrEmployeeInactive
	}

	now := s.clock.Now().UTC()
	date := workDay(now, s.loc)

	var result attendance.Record
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		rec, err := s.RecordRepository.GetForUpdate(txCtx, employeeID, date)
		if err != nil {
			return err
		}
		if rec == nil {
			rec, err = s.RecordRepository.Create(txCtx, attendance.Record{
				EmployeeID: employeeID,
				Date:       date,
				Status:     attendance.StatusPresent,
			})
			if err != nil {
				return err
			}
			// Lost the insert race; the winner's row already exists, lock it.
			if rec == nil {
				rec, err = s.RecordRepository.GetForUpdate(txCtx, employeeID, date)
				if err != nil {
					return err
				}
				if rec == nil {
					return fmt.Errorf("attendance record vanished after conflicting insert")
				}
			}
		}

		switch attendance.EventKind(req.Kind) {
		case attendance.KindClockIn:
			if rec.ClockIn == nil {
				rec.ClockIn = &now
				rec.ClockInLatitude = &req.Latitude
				rec.ClockInLongitude = &req.Longitude
				rec.ClockInAddress = req.Address
				rec.ClockInNotes = req.Notes
				rec.Status = clockInStatus(now, date, s.loc)
				if err := s.RecordRepository.UpdateClockIn(txCtx, *rec); err != nil {
					return err
				}
			}
		case attendance.KindClockOut:
			if rec.ClockIn != nil && rec.ClockOut == nil {
				duration := int(now.Sub(*rec.ClockIn).Minutes())
				rec.ClockOut = &now
				rec.ClockOutLatitude = &req.Latitude
				rec.ClockOutLongitude = &req.Longitude
				rec.ClockOutAddress = req.Address
				rec.ClockOutNotes = req.Notes
				rec.WorkDurationMinutes = &duration
				if err := s.RecordRepository.UpdateClockOut(txCtx, *rec); err != nil {
					return err
				}
			}
		}

		// The audit trail records every submission, including the ones the
		// record ignored.
		_, err = s.EventRepository.Create(txCtx, attendance.Event{
			RecordID:       rec.ID,
			Kind:           attendance.EventKind(req.Kind),
			LoggedAt:       now,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			IPAddress:      req.IPAddress,
			UserAgent:      req.UserAgent,
			DeviceInfo:     req.DeviceInfo,
			LocationData:   req.LocationData,
			FaceVerified:   req.FaceVerified,
			FaceConfidence: req.FaceConfidence,
		})
		if err != nil {
			return err
		}

		result = *rec
		return nil
	})
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.toRecordResponse(result), nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	now := s.clock.Now().UTC()
	date := workDay(now, s.loc)

	rec, err := s.RecordRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	recent, err := s.RecordRepository.ListRecent(ctx, employeeID, recentRecordLimit)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	local := now.In(s.loc)
	monthRecords, err := s.RecordRepository.ListByMonth(ctx, employeeID, local.Year(), local.Month())
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	resp := attendance.TodayResponse{
		CanClockIn:   rec == nil || rec.ClockIn == nil,
		CanClockOut:  rec != nil && rec.ClockIn != nil && rec.ClockOut == nil,
		Recent:       s.toRecordResponses(recent),
		MonthlyStats: monthlyStats(monthRecords, local.Year(), local.Month()),
	}
	if rec != nil {
		today := s.toRecordResponse(*rec)
		resp.Today = &today
	}

	return resp, nil
}

// GetHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetHistory(ctx context.Context, req attendance.HistoryRequest) (attendance.HistoryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.HistoryResponse{}, err
	}

	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	local := s.clock.Now().UTC().In(s.loc)
	year, month := local.Year(), local.Month()
	if req.Month != "" {
		parsed, err := time.Parse("2006-01", req.Month)
		if err != nil {
			return attendance.HistoryResponse{}, fmt.Errorf("failed to parse month: %w", err)
		}
		year, month = parsed.Year(), parsed.Month()
	}

	records, err := s.RecordRepository.ListByMonth(ctx, employeeID, year, month)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	return attendance.HistoryResponse{
		Month:        fmt.Sprintf("%04d-%02d", year, month),
		Records:      s.toRecordResponses(records),
		MonthlyStats: monthlyStats(records, year, month),
	}, nil
}

// Verify implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Verify(ctx context.Context, req attendance.VerifyRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if err := s.RecordRepository.SetVerified(ctx, req.RecordID, req.IsVerified); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.RecordRepository.GetByID(ctx, req.RecordID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return s.toRecordResponse(rec), nil
}

// ListEvents implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListEvents(ctx context.Context, recordID string) ([]attendance.EventResponse, error) {
	// 404 on unknown records rather than an empty trail.
	if _, err := s.RecordRepository.GetByID(ctx, recordID); err != nil {
		return nil, err
	}

	events, err := s.EventRepository.ListByRecord(ctx, recordID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		responses = append(responses, attendance.EventResponse{
			ID:             ev.ID,
			Kind:           string(ev.Kind),
			LoggedAt:       ev.LoggedAt.UTC().Format(time.RFC3339),
			Latitude:       ev.Latitude,
			Longitude:      ev.Longitude,
			IPAddress:      ev.IPAddress,
			UserAgent:      ev.UserAgent,
			DeviceInfo:     ev.DeviceInfo,
			LocationData:   ev.LocationData,
			FaceVerified:   ev.FaceVerified,
			FaceConfidence: ev.FaceConfidence,
		})
	}

	return responses, nil
}

// workDay truncates an instant to its calendar date in the work-day timezone.
func workDay(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// clockInStatus marks the day late when the clock-in is strictly after the
// cutoff; clocking in at 09:00:00 exactly is still present.
func clockInStatus(now time.Time, date time.Time, loc *time.Location) attendance.Status {
	cutoff := time.Date(date.Year(), date.Month(), date.Day(),
		lateCutoffHour, lateCutoffMinute, 0, 0, loc)
	if now.After(cutoff) {
		return attendance.StatusLate
	}
	return attendance.StatusPresent
}

// monthlyStats computes the employee-facing month summary. The attendance rate
// counts present+late days against calendar days; absent days are the calendar
// remainder, not stored rows.
func monthlyStats(records []attendance.Record, year int, month time.Month) attendance.MonthlyStats {
	daysInMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()

	stats := attendance.MonthlyStats{}
	totalMinutes := 0
	for _, rec := range records {
		stats.TotalDays++
		switch rec.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusLate:
			stats.LateDays++
		}
		if rec.WorkDurationMinutes != nil {
			totalMinutes += *rec.WorkDurationMinutes
		}
	}

	stats.AbsentDays = daysInMonth - stats.TotalDays
	stats.TotalWorkHours = round1(float64(totalMinutes) / 60)
	if stats.TotalDays > 0 {
		stats.AvgWorkHours = round1(float64(totalMinutes) / 60 / float64(stats.TotalDays))
		stats.AttendanceRate = round1(float64(stats.PresentDays+stats.LateDays) / float64(daysInMonth) * 100)
	}

	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (s *AttendanceServiceImpl) toRecordResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:                rec.ID,
		EmployeeID:        rec.EmployeeID,
		Date:              rec.Date.Format("2006-01-02"),
		ClockInTime:       s.timeOfDay(rec.ClockIn),
		ClockOutTime:      s.timeOfDay(rec.ClockOut),
		ClockInLatitude:   rec.ClockInLatitude,
		ClockInLongitude:  rec.ClockInLongitude,
		ClockOutLatitude:  rec.ClockOutLatitude,
		ClockOutLongitude: rec.ClockOutLongitude,
		ClockInAddress:    rec.ClockInAddress,
		ClockOutAddress:   rec.ClockOutAddress,
		ClockInNotes:      rec.ClockInNotes,
		ClockOutNotes:     rec.ClockOutNotes,
		Status:            string(rec.Status),
		WorkDuration:      rec.WorkDurationMinutes,
		IsVerified:        rec.IsVerified,
	}
}

func (s *AttendanceServiceImpl) toRecordResponses(records []attendance.Record) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, s.toRecordResponse(rec))
	}
	return responses
}

func (s *AttendanceServiceImpl) timeOfDay(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.In(s.loc).Format("15:04:05")
	return &formatted
}
