package timesheet

import "errors"

var (
	// ErrNoPunchData means the window holds no punches and no exception
	// days at all; distinguished from a computation failure.
	ErrNoPunchData = errors.New("no punch data in the requested window")

	ErrInvalidDateRange = errors.New("invalid report date range")
)
