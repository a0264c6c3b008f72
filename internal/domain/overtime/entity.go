package overtime

import "time"

// MaxDailyHours caps the cumulative overtime an employee may accrue per
// calendar day.
const MaxDailyHours = 3

// OvertimeRecord holds the cumulative extra hours for one employee on one
// calendar day. A repeated request on the same day merges into the
// existing row instead of creating a second one.
type OvertimeRecord struct {
	ID         string
	PeriodID   string
	EmployeeID string
	ExtraHours int16
	UpdatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
