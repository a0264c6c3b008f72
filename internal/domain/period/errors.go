package period

import "errors"

var (
	ErrPeriodNotFound = errors.New("attendance period not found")

	// ErrInvalidDateRange is returned when a period is created with
	// end_at before start_at.
	ErrInvalidDateRange = errors.New("end_at is lower than start_at")

	ErrAlreadyProcessed = errors.New("attendance period is already processed")
	ErrNotProcessed     = errors.New("attendance period is not processed")
)
