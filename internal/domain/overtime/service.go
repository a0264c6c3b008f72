package overtime

import "context"

type OvertimeService interface {
	// Request accrues overtime for today inside an open period. The
	// employee must have checked in today and the regular working day must
	// be over. The cumulative daily total may never exceed MaxDailyHours;
	// the cap is evaluated on existing + requested hours, not per request.
	Request(ctx context.Context, req OvertimeRequest) (OvertimeResponse, error)
}
