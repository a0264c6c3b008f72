package attendance

import "time"

type CheckInRequest struct {
	EmployeeID string
	PeriodID   string
}

type AttendanceResponse struct {
	ID          string    `json:"id"`
	PeriodID    string    `json:"attendance_period_id"`
	EmployeeID  string    `json:"created_by"`
	CheckedInAt time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Created reports whether this call inserted a new record (false on an
	// idempotent same-day repeat). Transport maps it to 201 vs 200.
	Created bool `json:"-"`
}

func NewAttendanceResponse(rec AttendanceRecord, created bool) AttendanceResponse {
	return AttendanceResponse{
		ID:          rec.ID,
		PeriodID:    rec.PeriodID,
		EmployeeID:  rec.EmployeeID,
		CheckedInAt: rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
		Created:     created,
	}
}
