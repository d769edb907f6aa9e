package calendar

import (
	"time"
)

// Holiday is a single exception date for a company; unique per
// (company, date).
type Holiday struct {
	ID        string
	CompanyID string
	Date      time.Time
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Recess is an inclusive date range with forced zero expected minutes,
// e.g. an end-of-year shutdown.
type Recess struct {
	ID        string
	CompanyID string
	Label     string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains reports whether d falls inside the recess range. Comparison is
// on civil dates; callers must pass a date truncated to midnight in the
// same location as StartDate/EndDate.
func (r Recess) Contains(d time.Time) bool {
	return !d.Before(r.StartDate) && !d.After(r.EndDate)
}
