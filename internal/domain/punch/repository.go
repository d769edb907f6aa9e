package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for punch events. Listings return
// rows in ascending timestamp order, which the timesheet engine depends on.
type PunchRepository interface {
	// Create inserts a punch. Insertion is duplicate-suppressing: if a punch
	// with the same (employee, timestamp) already exists, ErrDuplicatePunch
	// is returned and no row is written.
	Create(ctx context.Context, p Punch) (Punch, error)

	// ListByEmployeeAndRange returns punches with PunchedAt in [from, to),
	// ordered ascending.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)

	// ExistsAt reports whether a punch exists for the employee at the exact
	// timestamp. Used by the seed/import path.
	ExistsAt(ctx context.Context, employeeID string, at time.Time) (bool, error)
}
