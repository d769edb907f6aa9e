package timesheet

import (
	"time"
)

// civilDate truncates an instant to midnight of its civil date in loc.
// Every timestamp-to-date conversion in the engine goes through here so
// "today" and punch grouping always agree on one calendar.
func civilDate(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// dayKey renders the civil date of t in loc as "YYYY-MM-DD".
func dayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// calendarDay rebuilds a date-only value at midnight in loc from its own
// year, month and day. DATE columns scan as midnight UTC; converting them
// through In(loc) would land on the previous civil day west of UTC.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
