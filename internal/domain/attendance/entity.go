package attendance

import (
	"time"
)

// Record is the one-per-employee-per-day attendance row. Clock times are stored
// as UTC instants; the work day ("Date") is the calendar date in the configured
// work-day timezone.
type Record struct {
	ID                  string
	EmployeeID          string
	Date                time.Time
	ClockIn             *time.Time
	ClockOut            *time.Time
	ClockInLatitude     *float64
	ClockInLongitude    *float64
	ClockOutLatitude    *float64
	ClockOutLongitude   *float64
	ClockInAddress      *string
	ClockOutAddress     *string
	ClockInNotes        *string
	ClockOutNotes       *string
	Status              Status
	WorkDurationMinutes *int
	IsVerified          bool
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// DTO
	EmployeeName *string
}

type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
)

// Event is an immutable audit entry for a single clock submission. One row is
// appended per submission, including submissions the record ignored.
type Event struct {
	ID             string
	RecordID       string
	Kind           EventKind
	LoggedAt       time.Time
	Latitude       float64
	Longitude      float64
	IPAddress      string
	UserAgent      string
	DeviceInfo     map[string]interface{}
	LocationData   map[string]interface{}
	FaceVerified   bool
	FaceConfidence *float64
	CreatedAt      time.Time
}

type EventKind string

const (
	KindClockIn  EventKind = "clock_in"
	KindClockOut EventKind = "clock_out"
)
