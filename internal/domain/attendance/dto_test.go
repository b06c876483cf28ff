package attendance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/validator"
)

func TestClockRequest_Validate(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	valid := func() ClockRequest {
		return ClockRequest{
			Kind:      "clock_in",
			Latitude:  -6.2088,
			Longitude: 106.8456,
		}
	}

	tests := []struct {
		name      string
		mutate    func(*ClockRequest)
		wantField string
	}{
		{
			name:   "valid request",
			mutate: func(r *ClockRequest) {},
		},
		{
			name: "valid with optional fields",
			mutate: func(r *ClockRequest) {
				r.Address = strPtr("Jl. Sudirman No. 1")
				r.Notes = strPtr("traffic")
				r.FaceConfidence = floatPtr(0.97)
			},
		},
		{
			name:      "unknown kind",
			mutate:    func(r *ClockRequest) { r.Kind = "lunch_break" },
			wantField: "kind",
		},
		{
			name:      "latitude out of range",
			mutate:    func(r *ClockRequest) { r.Latitude = 90.1 },
			wantField: "latitude",
		},
		{
			name:      "longitude out of range",
			mutate:    func(r *ClockRequest) { r.Longitude = -180.5 },
			wantField: "longitude",
		},
		{
			name:      "address too long",
			mutate:    func(r *ClockRequest) { r.Address = strPtr(strings.Repeat("a", 501)) },
			wantField: "address",
		},
		{
			name:      "notes too long",
			mutate:    func(r *ClockRequest) { r.Notes = strPtr(strings.Repeat("n", 1001)) },
			wantField: "notes",
		},
		{
			name:      "face confidence below range",
			mutate:    func(r *ClockRequest) { r.FaceConfidence = floatPtr(-0.1) },
			wantField: "face_confidence",
		},
		{
			name:      "face confidence above range",
			mutate:    func(r *ClockRequest) { r.FaceConfidence = floatPtr(1.01) },
			wantField: "face_confidence",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.wantField)
		})
	}
}

func TestClockRequest_ValidateBoundaryLengths(t *testing.T) {
	address := strings.Repeat("a", 500)
	notes := strings.Repeat("n", 1000)
	confidence := 1.0

	req := ClockRequest{
		Kind:           "clock_out",
		Latitude:       90,
		Longitude:      180,
		Address:        &address,
		Notes:          &notes,
		FaceConfidence: &confidence,
	}

	assert.NoError(t, req.Validate())
}
