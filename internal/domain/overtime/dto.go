package overtime

import "time"

type OvertimeRequest struct {
	EmployeeID string `json:"-"`
	PeriodID   string `json:"-"`
	ExtraHours int16  `json:"extra_hours"`
}

type OvertimeResponse struct {
	ID         string    `json:"id"`
	PeriodID   string    `json:"attendance_period_id"`
	EmployeeID string    `json:"created_by"`
	ExtraHours int16     `json:"extra_hours"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Created reports whether a new row was inserted rather than an
	// existing day's total being bumped. Transport maps it to 201 vs 200.
	Created bool `json:"-"`
}

func NewOvertimeResponse(rec OvertimeRecord, created bool) OvertimeResponse {
	return OvertimeResponse{
		ID:         rec.ID,
		PeriodID:   rec.PeriodID,
		EmployeeID: rec.EmployeeID,
		ExtraHours: rec.ExtraHours,
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
		Created:    created,
	}
}
