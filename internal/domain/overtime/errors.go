package overtime

import "errors"

var (
	ErrNoCheckIn        = errors.New("you have not checked-in today")
	ErrWorkHoursNotDone = errors.New("your work hours are not done yet")
	ErrCapExceeded      = errors.New("you cannot take overtime for more than 3 hours a day")
	ErrInvalidHours     = errors.New("extra_hours must be a positive number of whole hours")
)
