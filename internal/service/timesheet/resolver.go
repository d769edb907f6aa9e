package timesheet

import (
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/schedule"
)

// DefaultDailyMinutes is the expected daily duration when neither the
// employee nor a schedule group defines one (8 hours).
const DefaultDailyMinutes = 480

// ResolvedSchedule is the effective weekly configuration for one employee.
type ResolvedSchedule struct {
	WorkDays     map[time.Weekday]bool
	DailyMinutes int
}

// ResolveSchedule applies the configuration precedence, highest first:
//  1. the employee's individual flags, when the individual-override flag
//     is set;
//  2. the schedule group's flags, when the employee references a group;
//  3. Mon-Fri otherwise.
// The employee's own duration, when set, always wins over the group's
// default; the global default closes the chain. Never fails.
func ResolveSchedule(emp employee.Employee, group *schedule.Group) ResolvedSchedule {
	minutes := DefaultDailyMinutes
	if emp.DailyMinutes != nil && *emp.DailyMinutes > 0 {
		minutes = *emp.DailyMinutes
	}

	switch {
	case emp.UseIndividualSchedule:
		return ResolvedSchedule{WorkDays: emp.WorkdayFlags.Set(), DailyMinutes: minutes}

	case group != nil:
		if (emp.DailyMinutes == nil || *emp.DailyMinutes <= 0) && group.DailyMinutes > 0 {
			minutes = group.DailyMinutes
		}
		return ResolvedSchedule{WorkDays: group.WorkdayFlags.Set(), DailyMinutes: minutes}

	default:
		return ResolvedSchedule{WorkDays: employee.WeekdaysMonFri.Set(), DailyMinutes: minutes}
	}
}
