package payroll

import "errors"

// ErrNoWorkingDays rejects rate computation for a period spanning no
// weekday, which would otherwise divide by zero.
var ErrNoWorkingDays = errors.New("attendance period contains no working days")
