package reimbursement

import "time"

type ReimbursementRequest struct {
	EmployeeID  string `json:"-"`
	PeriodID    string `json:"-"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type ReimbursementResponse struct {
	ID          string    `json:"id"`
	PeriodID    string    `json:"attendance_period_id"`
	EmployeeID  string    `json:"created_by"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewReimbursementResponse(rec ReimbursementRecord) ReimbursementResponse {
	return ReimbursementResponse{
		ID:          rec.ID,
		PeriodID:    rec.PeriodID,
		EmployeeID:  rec.EmployeeID,
		Description: rec.Description,
		Amount:      rec.Amount,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}
