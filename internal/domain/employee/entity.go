package employee

import (
	"time"
)

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleFuncionario Role = "FUNCIONARIO"
)

// Employee carries the per-employee schedule configuration used by the
// timesheet engine. DailyMinutes, when set, overrides the schedule group's
// default duration; the individual weekday flags are only honored when
// UseIndividualSchedule is true.
type Employee struct {
	ID                    string
	CompanyID             *string
	Username              string
	Email                 string
	Role                  Role
	DailyMinutes          *int
	ScheduleGroupID       *string
	HybridWork            bool
	UseIndividualSchedule bool
	WorkdayFlags          WeekdayFlags
	AccrualStartDate      *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// WeekdayFlags mirrors the seven per-weekday booleans stored on both
// employees (individual configuration) and schedule groups.
type WeekdayFlags struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// Set returns the flags as a lookup keyed by time.Weekday.
func (f WeekdayFlags) Set() map[time.Weekday]bool {
	return map[time.Weekday]bool{
		time.Monday:    f.Monday,
		time.Tuesday:   f.Tuesday,
		time.Wednesday: f.Wednesday,
		time.Thursday:  f.Thursday,
		time.Friday:    f.Friday,
		time.Saturday:  f.Saturday,
		time.Sunday:    f.Sunday,
	}
}

// WeekdaysMonFri is the fallback work-day set when neither an individual
// configuration nor a schedule group applies.
var WeekdaysMonFri = WeekdayFlags{
	Monday:    true,
	Tuesday:   true,
	Wednesday: true,
	Thursday:  true,
	Friday:    true,
}
