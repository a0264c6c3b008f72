package reimbursement

import "context"

type ReimbursementRepository interface {
	// Create appends a new reimbursement claim.
	Create(ctx context.Context, rec ReimbursementRecord) (ReimbursementRecord, error)

	// ListByEmployeeAndPeriod returns all claims for payroll.
	ListByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) ([]ReimbursementRecord, error)
}
