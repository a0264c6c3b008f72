package reimbursement

import "context"

type ReimbursementService interface {
	// Submit appends a claim to an open period. Always inserts.
	Submit(ctx context.Context, req ReimbursementRequest) (ReimbursementResponse, error)
}
