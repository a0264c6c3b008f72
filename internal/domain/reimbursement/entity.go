package reimbursement

import "time"

// ReimbursementRecord is an append-only claim. No dedup, no cap; the
// amount is a signed value in minor currency units and negative claims
// (deductions) pass through unvalidated.
type ReimbursementRecord struct {
	ID          string
	PeriodID    string
	EmployeeID  string
	Description string
	Amount      int64
	UpdatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
