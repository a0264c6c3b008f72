package attendance

import "time"

// AttendanceRecord is a single daily check-in. CreatedAt doubles as the
// check-in timestamp; at most one record exists per employee per period
// per calendar day.
type AttendanceRecord struct {
	ID         string
	PeriodID   string
	EmployeeID string
	UpdatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
