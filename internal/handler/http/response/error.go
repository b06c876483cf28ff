package response

import (
	"errors"
	"net/http"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/attendance"
	"github.com/wetrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wetrack-hr/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, "Employee account is inactive")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
