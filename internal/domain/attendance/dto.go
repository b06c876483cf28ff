package attendance

import (
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/validator"
)

const (
	maxAddressLength = 500
	maxNotesLength   = 1000
)

// ClockRequest carries a single clock_in/clock_out submission. IPAddress and
// UserAgent are populated by the HTTP layer, never by the client payload.
type ClockRequest struct {
	Kind           string                 `json:"kind"`
	Latitude       float64                `json:"latitude"`
	Longitude      float64                `json:"longitude"`
	Address        *string                `json:"address,omitempty"`
	Notes          *string                `json:"notes,omitempty"`
	DeviceInfo     map[string]interface{} `json:"device_info,omitempty"`
	LocationData   map[string]interface{} `json:"location_data,omitempty"`
	FaceVerified   bool                   `json:"face_verified"`
	FaceConfidence *float64               `json:"face_confidence,omitempty"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Kind, []string{string(KindClockIn), string(KindClockOut)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of: clock_in, clock_out",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.Address != nil && len(*r.Address) > maxAddressLength {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not exceed 500 characters",
		})
	}

	if r.Notes != nil && len(*r.Notes) > maxNotesLength {
		errs = append(errs, validator.ValidationError{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		})
	}

	if r.FaceConfidence != nil && (*r.FaceConfidence < 0 || *r.FaceConfidence > 1) {
		errs = append(errs, validator.ValidationError{
			Field:   "face_confidence",
			Message: "face_confidence must be between 0 and 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RecordResponse struct {
	ID                string   `json:"id"`
	EmployeeID        string   `json:"employee_id"`
	Date              string   `json:"date"`
	ClockInTime       *string  `json:"clock_in_time,omitempty"`
	ClockOutTime      *string  `json:"clock_out_time,omitempty"`
	ClockInLatitude   *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude  *float64 `json:"clock_in_longitude,omitempty"`
	ClockOutLatitude  *float64 `json:"clock_out_latitude,omitempty"`
	ClockOutLongitude *float64 `json:"clock_out_longitude,omitempty"`
	ClockInAddress    *string  `json:"clock_in_address,omitempty"`
	ClockOutAddress   *string  `json:"clock_out_address,omitempty"`
	ClockInNotes      *string  `json:"clock_in_notes,omitempty"`
	ClockOutNotes     *string  `json:"clock_out_notes,omitempty"`
	Status            string   `json:"status"`
	WorkDuration      *int     `json:"work_duration,omitempty"`
	IsVerified        bool     `json:"is_verified"`
}

// MonthlyStats is the employee-facing monthly summary. Its attendance rate
// counts present+late days against calendar days; the admin monthly report
// uses a totalDays-based rate instead, and the two are intentionally not the
// same number.
type MonthlyStats struct {
	TotalDays      int     `json:"total_days"`
	PresentDays    int     `json:"present_days"`
	LateDays       int     `json:"late_days"`
	AbsentDays     int     `json:"absent_days"`
	TotalWorkHours float64 `json:"total_work_hours"`
	AvgWorkHours   float64 `json:"avg_work_hours"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type TodayResponse struct {
	Today        *RecordResponse  `json:"today,omitempty"`
	CanClockIn   bool             `json:"can_clock_in"`
	CanClockOut  bool             `json:"can_clock_out"`
	Recent       []RecordResponse `json:"recent"`
	MonthlyStats MonthlyStats     `json:"monthly_stats"`
}

type HistoryRequest struct {
	Month string `json:"month"` // YYYY-MM, defaults to current month
}

func (r *HistoryRequest) Validate() error {
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

type HistoryResponse struct {
	Month        string           `json:"month"`
	Records      []RecordResponse `json:"records"`
	MonthlyStats MonthlyStats     `json:"monthly_stats"`
}

// VerifyRequest marks a record as checked by an administrator.
type VerifyRequest struct {
	RecordID   string `json:"-"`
	IsVerified bool   `json:"is_verified"`
}

func (r *VerifyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "record id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EventResponse struct {
	ID             string                 `json:"id"`
	Kind           string                 `json:"kind"`
	LoggedAt       string                 `json:"logged_at"`
	Latitude       float64                `json:"latitude"`
	Longitude      float64                `json:"longitude"`
	IPAddress      string                 `json:"ip_address"`
	UserAgent      string                 `json:"user_agent"`
	DeviceInfo     map[string]interface{} `json:"device_info,omitempty"`
	LocationData   map[string]interface{} `json:"location_data,omitempty"`
	FaceVerified   bool                   `json:"face_verified"`
	FaceConfidence *float64               `json:"face_confidence,omitempty"`
}
