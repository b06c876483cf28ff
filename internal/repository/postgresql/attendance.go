package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordRepository {
	return &attendanceRepository{db: db}
}

const recordColumns = `
	a.id, a.employee_id, a.date,
	a.clock_in, a.clock_out,
	a.clock_in_latitude, a.clock_in_longitude,
	a.clock_out_latitude, a.clock_out_longitude,
	a.clock_in_address, a.clock_out_address,
	a.clock_in_notes, a.clock_out_notes,
	a.status, a.work_duration_minutes, a.is_verified,
	a.created_at, a.updated_at`

func scanRecord(row pgx.Row, rec *attendance.Record) error {
	return row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut,
		&rec.ClockInLatitude, &rec.ClockInLongitude,
		&rec.ClockOutLatitude, &rec.ClockOutLongitude,
		&rec.ClockInAddress, &rec.ClockOutAddress,
		&rec.ClockInNotes, &rec.ClockOutNotes,
		&rec.Status, &rec.WorkDurationMinutes, &rec.IsVerified,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
}

// Create inserts the day's row. On a (employee_id, date) conflict it returns
// (nil, nil): a concurrent writer already created the row and the caller
// should re-read it under lock.
func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (*attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING created_at, updated_at`

	err := querier.QueryRow(ctx, query,
		rec.ID, rec.EmployeeID, rec.Date.Format("2006-01-02"), rec.Status,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return &rec, nil
}

// GetForUpdate loads the employee's row for the given work day with a row
// lock. Must be called inside WithTransaction. Returns (nil, nil) when no row
// exists yet.
func (r *attendanceRepository) GetForUpdate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT` + recordColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
		FOR UPDATE`

	var rec attendance.Record
	err := scanRecord(querier.QueryRow(ctx, query, employeeID, date.Format("2006-01-02")), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock attendance record: %w", err)
	}

	return &rec, nil
}

// GetByEmployeeAndDate returns (nil, nil) when the employee has no row for the
// given work day.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT` + recordColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2`

	var rec attendance.Record
	err := scanRecord(querier.QueryRow(ctx, query, employeeID, date.Format("2006-01-02")), &rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT` + recordColumns + `, e.name
		FROM attendances a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1`

	var rec attendance.Record
	row := querier.QueryRow(ctx, query, id)
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date,
		&rec.ClockIn, &rec.ClockOut,
		&rec.ClockInLatitude, &rec.ClockInLongitude,
		&rec.ClockOutLatitude, &rec.ClockOutLongitude,
		&rec.ClockInAddress, &rec.ClockOutAddress,
		&rec.ClockInNotes, &rec.ClockOutNotes,
		&rec.Status, &rec.WorkDurationMinutes, &rec.IsVerified,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) UpdateClockIn(ctx context.Context, rec attendance.Record) error {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_in = $2, clock_in_latitude = $3, clock_in_longitude = $4,
			clock_in_address = $5, clock_in_notes = $6, status = $7,
			updated_at = NOW()
		WHERE id = $1`

	_, err := querier.Exec(ctx, query,
		rec.ID, rec.ClockIn, rec.ClockInLatitude, rec.ClockInLongitude,
		rec.ClockInAddress, rec.ClockInNotes, rec.Status,
	)
	if err != nil {
		return fmt.Errorf("failed to update clock-in: %w", err)
	}

	return nil
}

func (r *attendanceRepository) UpdateClockOut(ctx context.Context, rec attendance.Record) error {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $2, clock_out_latitude = $3, clock_out_longitude = $4,
			clock_out_address = $5, clock_out_notes = $6,
			work_duration_minutes = $7, updated_at = NOW()
		WHERE id = $1`

	_, err := querier.Exec(ctx, query,
		rec.ID, rec.ClockOut, rec.ClockOutLatitude, rec.ClockOutLongitude,
		rec.ClockOutAddress, rec.ClockOutNotes, rec.WorkDurationMinutes,
	)
	if err != nil {
		return fmt.Errorf("failed to update clock-out: %w", err)
	}

	return nil
}

func (r *attendanceRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	querier := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET is_verified = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id`

	var returnedID string
	err := querier.QueryRow(ctx, query, id, verified).Scan(&returnedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update verification: %w", err)
	}

	return nil
}

func (r *attendanceRepository) ListRecent(ctx context.Context, employeeID string, limit int) ([]attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT` + recordColumns + `
		FROM attendances a
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
		LIMIT $2`

	rows, err := querier.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent attendance: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func (r *attendanceRepository) ListByMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Record, error) {
	querier := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT` + recordColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date >= $2 AND a.date < $3
		ORDER BY a.date DESC`

	rows, err := querier.Query(ctx, query,
		employeeID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by month: %w", err)
	}
	defer rows.Close()

	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	records := make([]attendance.Record, 0)
	for rows.Next() {
		var rec attendance.Record
		if err := scanRecord(rows, &rec); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}
	return records, nil
}
