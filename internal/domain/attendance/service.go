package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Clock processes a clock_in/clock_out submission for the authenticated
	// employee. Duplicate and out-of-order submissions leave the record
	// untouched but are still written to the audit trail.
	Clock(ctx context.Context, req ClockRequest) (RecordResponse, error)

	// GetToday returns today's record (if any), clock-action availability,
	// recent records and the current month's summary.
	GetToday(ctx context.Context) (TodayResponse, error)

	// GetHistory returns the employee's records for a month, newest first.
	GetHistory(ctx context.Context, req HistoryRequest) (HistoryResponse, error)

	// Verify sets the administrator verification flag on a record.
	Verify(ctx context.Context, req VerifyRequest) (RecordResponse, error)

	// ListEvents returns a record's audit trail, oldest first.
	ListEvents(ctx context.Context, recordID string) ([]EventResponse, error)
}
