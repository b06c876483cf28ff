package attendance

import (
	"context"
	"time"
)

// RecordRepository persists the one-row-per-employee-per-day records.
//
// Create uses ON CONFLICT DO NOTHING on the (employee_id, date) uniqueness
// constraint and reports the conflict instead of failing, so a concurrent
// duplicate clock-in degrades into the same no-op the service applies for
// sequential duplicates. GetForUpdate takes a row lock and must run inside a
// transaction.
type RecordRepository interface {
	Create(ctx context.Context, rec Record) (*Record, error)
	GetForUpdate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	UpdateClockIn(ctx context.Context, rec Record) error
	UpdateClockOut(ctx context.Context, rec Record) error
	SetVerified(ctx context.Context, id string, verified bool) error
	ListRecent(ctx context.Context, employeeID string, limit int) ([]Record, error)
	ListByMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Record, error)
}

// EventRepository persists the append-only audit trail.
type EventRepository interface {
	Create(ctx context.Context, ev Event) (Event, error)
	ListByRecord(ctx context.Context, recordID string) ([]Event, error)
}
