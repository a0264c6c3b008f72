package attendance

import "context"

type AttendanceService interface {
	// CheckIn records today's attendance for an employee inside an open
	// period. Weekend calls fail with ErrWeekendCheckIn; a repeated call on
	// the same calendar day returns the existing record unchanged.
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)
}
