package period

import "context"

// PeriodService manages the pay period lifecycle. Admin-only calls are
// enforced by the transport middleware; the service trusts the caller id
// handed to it.
type PeriodService interface {
	// Create opens a new pay period. Fails with ErrInvalidDateRange when
	// the requested end is before the start.
	Create(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)

	// Get fetches a single period by id.
	Get(ctx context.Context, id string) (PeriodResponse, error)

	// Process marks an open period processed. One-directional: there is
	// no unprocess operation.
	Process(ctx context.Context, adminID string, periodID string) (PeriodResponse, error)
}
