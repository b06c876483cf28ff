package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/database"
)

type attendanceLogRepository struct {
	db *database.DB
}

func NewAttendanceLogRepository(db *database.DB) attendance.EventRepository {
	return &attendanceLogRepository{db: db}
}

// Create appends an audit event. Events are append-only; there is no update or
// delete path.
func (r *attendanceLogRepository) Create(ctx context.Context, ev attendance.Event) (attendance.Event, error) {
	querier := GetQuerier(ctx, r.db)

	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_logs (
			id, attendance_id, kind, logged_at,
			latitude, longitude, ip_address, user_agent,
			device_info, location_data, face_verified, face_confidence
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at`

	err := querier.QueryRow(ctx, query,
		ev.ID, ev.RecordID, ev.Kind, ev.LoggedAt,
		ev.Latitude, ev.Longitude, ev.IPAddress, ev.UserAgent,
		ev.DeviceInfo, ev.LocationData, ev.FaceVerified, ev.FaceConfidence,
	).Scan(&ev.CreatedAt)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return ev, nil
}

func (r *attendanceLogRepository) ListByRecord(ctx context.Context, recordID string) ([]attendance.Event, error) {
	querier := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_id, kind, logged_at,
			latitude, longitude, ip_address, user_agent,
			device_info, location_data, face_verified, face_confidence,
			created_at
		FROM attendance_logs
		WHERE attendance_id = $1
		ORDER BY logged_at ASC, created_at ASC`

	rows, err := querier.Query(ctx, query, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	events := make([]attendance.Event, 0)
	for rows.Next() {
		var ev attendance.Event
		err := rows.Scan(
			&ev.ID, &ev.RecordID, &ev.Kind, &ev.LoggedAt,
			&ev.Latitude, &ev.Longitude, &ev.IPAddress, &ev.UserAgent,
			&ev.DeviceInfo, &ev.LocationData, &ev.FaceVerified, &ev.FaceConfidence,
			&ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return events, nil
}
