package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	// Create inserts a new daily overtime record.
	Create(ctx context.Context, rec OvertimeRecord) (OvertimeRecord, error)

	// FindByEmployeeAndDayRange looks up the employee's record for a period
	// whose created_at falls inside [dayStart, dayEnd]. Returns nil when no
	// record exists.
	FindByEmployeeAndDayRange(ctx context.Context, employeeID, periodID string, dayStart, dayEnd time.Time) (*OvertimeRecord, error)

	// UpdateHours replaces the cumulative extra_hours of an existing record
	// and stamps updated_by.
	UpdateHours(ctx context.Context, id string, employeeID string, hours int16) (OvertimeRecord, error)

	// ListByEmployeeAndPeriod returns all overtime records for payroll.
	ListByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) ([]OvertimeRecord, error)
}
