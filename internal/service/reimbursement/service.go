package reimbursement

import (
	"context"

	"github.com/attendly/payroll-backend-go/internal/domain/period"
	"github.com/attendly/payroll-backend-go/internal/domain/reimbursement"
)

type ReimbursementServiceImpl struct {
	reimbursementRepo reimbursement.ReimbursementRepository
	periodRepo        period.PeriodRepository
}

func NewReimbursementService(
	reimbursementRepo reimbursement.ReimbursementRepository,
	periodRepo period.PeriodRepository,
) reimbursement.ReimbursementService {
	return &ReimbursementServiceImpl{
		reimbursementRepo: reimbursementRepo,
		periodRepo:        periodRepo,
	}
}

// Submit implements reimbursement.ReimbursementService. Claims are
// append-only: any signed amount passes, repeated submissions stack, and
// nothing caps the total. Validation happens at payroll review time, not
// here.
func (s *ReimbursementServiceImpl) Submit(ctx context.Context, req reimbursement.ReimbursementRequest) (reimbursement.ReimbursementResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, req.PeriodID)
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}
	if err := p.EnsureOpen(); err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}

	rec, err := s.reimbursementRepo.Create(ctx, reimbursement.ReimbursementRecord{
		PeriodID:    req.PeriodID,
		EmployeeID:  req.EmployeeID,
		Description: req.Description,
		Amount:      req.Amount,
	})
	if err != nil {
		return reimbursement.ReimbursementResponse{}, err
	}

	return reimbursement.NewReimbursementResponse(rec), nil
}
