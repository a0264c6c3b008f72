package period

import "context"

type PeriodRepository interface {
	// Create persists a new open period and returns it with generated fields.
	Create(ctx context.Context, p PayPeriod) (PayPeriod, error)

	// GetByID retrieves a period or ErrPeriodNotFound.
	GetByID(ctx context.Context, id string) (PayPeriod, error)

	// MarkProcessed flips the processed flag and stamps updated_by.
	MarkProcessed(ctx context.Context, id string, adminID string) (PayPeriod, error)
}
