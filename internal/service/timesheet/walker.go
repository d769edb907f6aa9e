package timesheet

import (
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/timesheet"
)

// walkInput carries everything the calendar walk needs, fetched up front.
// The walk itself performs no repository calls; windows can span years of
// daily iterations.
type walkInput struct {
	Schedule     ResolvedSchedule
	Exceptions   *ExceptionIndex
	PunchesByDay map[string][]punch.Punch
	Start        time.Time // civil date, midnight in Loc
	End          time.Time // civil date, inclusive
	Today        time.Time // civil date
	AccrualStart *time.Time
	Mode         PairingMode
	IncludeAll   bool
	Loc          *time.Location
}

// dayRow is one computed day, before presentation formatting.
type dayRow struct {
	Date         time.Time
	Tag          timesheet.DayTag
	Label        string
	WorkedMin    int
	ExpectedMin  int
	BalanceMin   int
	Resolved     bool
	HasPunches   bool
	Inconsistent bool
}

type walkResult struct {
	Rows     []dayRow // ascending by date
	TotalMin int
}

// walk iterates every calendar date of the window in ascending order,
// classifies each day, aggregates its worked minutes and accumulates the
// running balance. Days strictly before the accrual start date do not
// exist in the output and never touch the total.
func walk(in walkInput) walkResult {
	start := in.Start
	if in.AccrualStart != nil {
		// Date-only column, read by its own calendar day.
		if as := calendarDay(*in.AccrualStart, in.Loc); as.After(start) {
			start = as
		}
	}

	// Days after today carry no punches and no verdict yet; walking them
	// would pre-accrue a deficit over the whole remaining window.
	end := in.End
	if end.After(in.Today) {
		end = in.Today
	}

	var res walkResult
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		punches := in.PunchesByDay[dayKey(d, in.Loc)]
		excKind, label := in.Exceptions.Classify(d)

		expected := 0
		var tag timesheet.DayTag
		switch {
		case excKind == ExceptionHoliday:
			tag = timesheet.TagFeriado
		case excKind == ExceptionRecess:
			tag = timesheet.TagRecesso
		case in.Schedule.WorkDays[d.Weekday()]:
			expected = in.Schedule.DailyMinutes
			tag = timesheet.TagNormal
		default:
			tag = timesheet.TagFolga
		}

		worked, consistent := WorkedMinutes(punches, in.Mode)

		row := dayRow{
			Date:         d,
			Tag:          tag,
			Label:        label,
			WorkedMin:    worked,
			ExpectedMin:  expected,
			HasPunches:   len(punches) > 0,
			Inconsistent: !consistent,
		}

		// Today stays unresolved until the day closes with a SAIDA punch;
		// an unresolved day contributes exactly zero to the total.
		isToday := d.Equal(in.Today)
		unresolved := isToday && (len(punches) == 0 || punches[len(punches)-1].Kind != punch.KindSaida)
		if unresolved {
			row.Tag = timesheet.TagEmAndamento
		} else {
			row.Resolved = true
			row.BalanceMin = worked - expected
			res.TotalMin += row.BalanceMin

			if expected > 0 && worked == 0 && d.Before(in.Today) {
				row.Tag = timesheet.TagFalta
			}
		}

		if in.IncludeAll || row.HasPunches || row.Tag == timesheet.TagFalta ||
			row.Tag == timesheet.TagEmAndamento || excKind != ExceptionNone {
			res.Rows = append(res.Rows, row)
		}
	}
	return res
}
