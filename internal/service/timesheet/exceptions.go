package timesheet

import (
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
)

type ExceptionKind int

const (
	ExceptionNone ExceptionKind = iota
	ExceptionHoliday
	ExceptionRecess
)

// ExceptionIndex is the per-request lookup over a company's holiday dates
// and recess ranges. Built once before the calendar walk; Classify does no
// repository calls.
type ExceptionIndex struct {
	loc      *time.Location
	holidays map[string]string
	recesses []calendar.Recess
}

func NewExceptionIndex(holidays []calendar.Holiday, recesses []calendar.Recess, loc *time.Location) *ExceptionIndex {
	idx := &ExceptionIndex{
		loc:      loc,
		holidays: make(map[string]string, len(holidays)),
	}
	// Holiday and recess dates are date-only values; they are read by
	// their own calendar day, never shifted into loc.
	for _, h := range holidays {
		idx.holidays[h.Date.Format("2006-01-02")] = h.Label
	}
	for _, r := range recesses {
		r.StartDate = calendarDay(r.StartDate, loc)
		r.EndDate = calendarDay(r.EndDate, loc)
		idx.recesses = append(idx.recesses, r)
	}
	return idx
}

// Classify returns the exception for a civil date: holiday membership is
// checked first, then recess ranges in listed order; first match wins.
// A nil index classifies everything as NONE.
func (idx *ExceptionIndex) Classify(d time.Time) (ExceptionKind, string) {
	if idx == nil {
		return ExceptionNone, ""
	}
	if label, ok := idx.holidays[dayKey(d, idx.loc)]; ok {
		return ExceptionHoliday, label
	}
	day := civilDate(d, idx.loc)
	for _, r := range idx.recesses {
		if r.Contains(day) {
			return ExceptionRecess, r.Label
		}
	}
	return ExceptionNone, ""
}
