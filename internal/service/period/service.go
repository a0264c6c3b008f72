package period

import (
	"context"

	"github.com/attendly/payroll-backend-go/internal/domain/period"
)

type PeriodServiceImpl struct {
	periodRepo period.PeriodRepository
}

func NewPeriodService(periodRepo period.PeriodRepository) period.PeriodService {
	return &PeriodServiceImpl{periodRepo: periodRepo}
}

// Create implements period.PeriodService.
func (s *PeriodServiceImpl) Create(ctx context.Context, req period.CreatePeriodRequest) (period.PeriodResponse, error) {
	start, end, err := req.Validate()
	if err != nil {
		return period.PeriodResponse{}, err
	}

	// A single-instant period (start == end) is allowed; only a reversed
	// range is rejected.
	if end.Before(start) {
		return period.PeriodResponse{}, period.ErrInvalidDateRange
	}

	created, err := s.periodRepo.Create(ctx, period.PayPeriod{
		StartAt:   start,
		EndAt:     end,
		CreatedBy: &req.AdminID,
		UpdatedBy: &req.AdminID,
	})
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return period.NewPeriodResponse(created), nil
}

// Get implements period.PeriodService.
func (s *PeriodServiceImpl) Get(ctx context.Context, id string) (period.PeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		return period.PeriodResponse{}, err
	}
	return period.NewPeriodResponse(p), nil
}

// Process implements period.PeriodService.
func (s *PeriodServiceImpl) Process(ctx context.Context, adminID string, periodID string) (period.PeriodResponse, error) {
	p, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	if err := p.EnsureOpen(); err != nil {
		return period.PeriodResponse{}, err
	}

	processed, err := s.periodRepo.MarkProcessed(ctx, periodID, adminID)
	if err != nil {
		return period.PeriodResponse{}, err
	}

	return period.NewPeriodResponse(processed), nil
}
