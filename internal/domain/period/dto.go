package period

import (
	"time"

	"github.com/attendly/payroll-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	AdminID string `json:"-"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

// Validate parses the period bounds. Range ordering is the service's
// concern; this only rejects malformed timestamps.
func (r CreatePeriodRequest) Validate() (start, end time.Time, err error) {
	var errs validator.ValidationErrors

	start, ok := validator.IsValidDateTime(r.StartAt)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_at", Message: "must be an ISO8601 timestamp"})
	}
	end, ok = validator.IsValidDateTime(r.EndAt)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_at", Message: "must be an ISO8601 timestamp"})
	}

	if len(errs) > 0 {
		return time.Time{}, time.Time{}, errs
	}
	return start, end, nil
}

type PeriodResponse struct {
	ID        string    `json:"id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Processed bool      `json:"processed"`
	CreatedBy *string   `json:"created_by,omitempty"`
	UpdatedBy *string   `json:"updated_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPeriodResponse(p PayPeriod) PeriodResponse {
	return PeriodResponse{
		ID:        p.ID,
		StartAt:   p.StartAt,
		EndAt:     p.EndAt,
		Processed: p.Processed,
		CreatedBy: p.CreatedBy,
		UpdatedBy: p.UpdatedBy,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
