package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/attendance"
)

func TestClockInStatus(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	date := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want attendance.Status
	}{
		{
			name: "early morning is present",
			now:  time.Date(2026, time.March, 10, 7, 15, 0, 0, loc),
			want: attendance.StatusPresent,
		},
		{
			name: "exactly at cutoff is present",
			now:  time.Date(2026, time.March, 10, 9, 0, 0, 0, loc),
			want: attendance.StatusPresent,
		},
		{
			name: "one second past cutoff is late",
			now:  time.Date(2026, time.March, 10, 9, 0, 1, 0, loc),
			want: attendance.StatusLate,
		},
		{
			name: "afternoon is late",
			now:  time.Date(2026, time.March, 10, 13, 0, 0, 0, loc),
			want: attendance.StatusLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clockInStatus(tt.now.UTC(), date, loc))
		})
	}
}

func TestWorkDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 23:30 local on March 10 is 16:30 UTC the same day.
	now := time.Date(2026, time.March, 10, 23, 30, 0, 0, loc).UTC()
	assert.Equal(t, "2026-03-10", workDay(now, loc).Format("2006-01-02"))

	// 01:00 local on March 11 is still March 10 in UTC.
	now = time.Date(2026, time.March, 11, 1, 0, 0, 0, loc).UTC()
	assert.Equal(t, "2026-03-11", workDay(now, loc).Format("2006-01-02"))
}

func TestMonthlyStats(t *testing.T) {
	minutes := func(m int) *int { return &m }

	t.Run("empty month", func(t *testing.T) {
		stats := monthlyStats(nil, 2026, time.February)
		assert.Equal(t, 0, stats.TotalDays)
		assert.Equal(t, 28, stats.AbsentDays)
		assert.Equal(t, 0.0, stats.TotalWorkHours)
		assert.Equal(t, 0.0, stats.AvgWorkHours)
		assert.Equal(t, 0.0, stats.AttendanceRate)
	})

	t.Run("mixed month", func(t *testing.T) {
		records := []attendance.Record{
			{Status: attendance.StatusPresent, WorkDurationMinutes: minutes(480)},
			{Status: attendance.StatusPresent, WorkDurationMinutes: minutes(510)},
			{Status: attendance.StatusLate, WorkDurationMinutes: minutes(450)},
			{Status: attendance.StatusAbsent},
		}

		stats := monthlyStats(records, 2026, time.March)
		assert.Equal(t, 4, stats.TotalDays)
		assert.Equal(t, 2, stats.PresentDays)
		assert.Equal(t, 1, stats.LateDays)
		assert.Equal(t, 27, stats.AbsentDays)
		assert.Equal(t, 24.0, stats.TotalWorkHours)
		assert.Equal(t, 6.0, stats.AvgWorkHours)
		// (2 present + 1 late) / 31 days
		assert.Equal(t, 9.7, stats.AttendanceRate)
	})
}
