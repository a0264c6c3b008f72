// Package datetime holds the calendar arithmetic shared by the attendance
// and payroll services. All day-level reasoning happens in the timezone of
// the supplied time values.
package datetime

import "time"

// DayRange returns the inclusive [00:00:00, 23:59:59] window of t's
// calendar day, in t's location. Ledger lookups dedupe per day against
// this range.
func DayRange(t time.Time) (start, end time.Time) {
	y, m, d := t.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	end = time.Date(y, m, d, 23, 59, 59, 0, t.Location())
	return start, end
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// CountWorkingDays counts the Mon-Fri calendar days in [start, end]
// inclusive. The time-of-day component is ignored: a period ending at
// 00:00 on a weekday still counts that weekday.
func CountWorkingDays(start, end time.Time) int64 {
	y, m, d := start.Date()
	cur := time.Date(y, m, d, 0, 0, 0, 0, start.Location())
	y, m, d = end.Date()
	last := time.Date(y, m, d, 0, 0, 0, 0, end.Location())

	var workingDays int64
	for !cur.After(last) {
		if !IsWeekend(cur) {
			workingDays++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return workingDays
}
