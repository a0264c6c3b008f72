package period

import "time"

// PayPeriod is the aggregate root for attendance, overtime and
// reimbursement records. It is created open and transitions exactly once
// to processed; there is no way back.
type PayPeriod struct {
	ID        string
	StartAt   time.Time
	EndAt     time.Time
	Processed bool
	CreatedBy *string
	UpdatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EnsureOpen gates every write into the period's ledgers.
func (p PayPeriod) EnsureOpen() error {
	if p.Processed {
		return ErrAlreadyProcessed
	}
	return nil
}

// EnsureProcessed gates payslip generation.
func (p PayPeriod) EnsureProcessed() error {
	if !p.Processed {
		return ErrNotProcessed
	}
	return nil
}
