package attendance

import "errors"

// Attendance domain errors. Duplicate or out-of-order clock actions are NOT
// errors: the recording service absorbs them as no-ops and only the audit
// trail records the attempt.
var (
	ErrRecordNotFound = errors.New("attendance record not found")
)
