package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a new check-in record.
	Create(ctx context.Context, rec AttendanceRecord) (AttendanceRecord, error)

	// FindByEmployeeAndDayRange looks up the employee's record for a period
	// whose created_at falls inside [dayStart, dayEnd]. Returns nil when no
	// record exists; used to keep check-in idempotent per calendar day.
	FindByEmployeeAndDayRange(ctx context.Context, employeeID, periodID string, dayStart, dayEnd time.Time) (*AttendanceRecord, error)

	// CountByEmployeeAndPeriod counts attendance days for payroll proration.
	CountByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (int64, error)
}
