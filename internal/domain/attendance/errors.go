package attendance

import "errors"

var ErrWeekendCheckIn = errors.New("cannot attend on weekend")
