package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoflow/ponto-backend-go/internal/domain/timesheet"
)

// defaultWindowDays is how far back the report reaches when no start date
// is given.
const defaultWindowDays = 30

type TimesheetServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	schedule.GroupRepository
	calendar.CalendarRepository
	loc            *time.Location
	mode           PairingMode
	exportPageRows int
}

func NewTimesheetService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	groupRepo schedule.GroupRepository,
	calendarRepo calendar.CalendarRepository,
	loc *time.Location,
	mode PairingMode,
	exportPageRows int,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		GroupRepository:    groupRepo,
		CalendarRepository: calendarRepo,
		loc:                loc,
		mode:               mode,
		exportPageRows:     exportPageRows,
	}
}

// Report implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Report(ctx context.Context, filter timesheet.ReportFilter) (timesheet.ReportResponse, error) {
	res, _, err := s.computeWindow(ctx, filter, false)
	if err != nil {
		return timesheet.ReportResponse{}, err
	}

	// Rows were computed ascending; the report displays newest first.
	rows := make([]timesheet.ReportRow, 0, len(res.Rows))
	for i := len(res.Rows) - 1; i >= 0; i-- {
		r := res.Rows[i]
		rows = append(rows, timesheet.ReportRow{
			DateLabel:  r.Date.Format("02/01"),
			Worked:     FormatMinutes(r.WorkedMin),
			DayBalance: balanceLabel(r),
			Tag:        string(r.Tag),
			Label:      r.Label,
		})
	}

	return timesheet.ReportResponse{
		TotalBalance: FormatBalance(res.TotalMin),
		Rows:         rows,
	}, nil
}

// Export implements timesheet.TimesheetService. Every calendar day of the
// window appears, chronologically, chunked into pages for the print layer.
func (s *TimesheetServiceImpl) Export(ctx context.Context, filter timesheet.ReportFilter) (timesheet.ExportResponse, error) {
	res, emp, err := s.computeWindow(ctx, filter, true)
	if err != nil {
		return timesheet.ExportResponse{}, err
	}
	if len(res.Rows) == 0 {
		return timesheet.ExportResponse{}, timesheet.ErrNoPunchData
	}

	var pages []timesheet.ExportPage
	var current timesheet.ExportPage
	current.Number = 1
	for _, r := range res.Rows {
		if len(current.Rows) == s.exportPageRows {
			pages = append(pages, current)
			current = timesheet.ExportPage{Number: len(pages) + 1}
		}
		current.Rows = append(current.Rows, timesheet.ExportRow{
			Date:       r.Date.Format("02/01/2006"),
			Weekday:    weekdayNamesPT[r.Date.Weekday()],
			Worked:     FormatMinutes(r.WorkedMin),
			Expected:   FormatMinutes(r.ExpectedMin),
			DayBalance: balanceLabel(r),
			Tag:        string(r.Tag),
			Label:      r.Label,
		})
	}
	pages = append(pages, current)

	return timesheet.ExportResponse{
		EmployeeName: emp.Username,
		StartDate:    res.Rows[0].Date.Format("02/01/2006"),
		EndDate:      res.Rows[len(res.Rows)-1].Date.Format("02/01/2006"),
		TotalBalance: FormatBalance(res.TotalMin),
		Pages:        pages,
	}, nil
}

// computeWindow fetches the employee configuration, exception days and
// punches for the requested window up front, then runs the calendar walk.
func (s *TimesheetServiceImpl) computeWindow(ctx context.Context, filter timesheet.ReportFilter, includeAll bool) (walkResult, employee.Employee, error) {
	if err := filter.Validate(); err != nil {
		return walkResult{}, employee.Employee{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return walkResult{}, employee.Employee{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return walkResult{}, employee.Employee{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return walkResult{}, employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var group *schedule.Group
	if emp.ScheduleGroupID != nil {
		g, err := s.GroupRepository.GetByID(ctx, *emp.ScheduleGroupID)
		switch {
		case err == nil:
			group = &g
		case errors.Is(err, schedule.ErrGroupNotFound):
			// Dangling reference falls back to the default schedule.
		default:
			return walkResult{}, employee.Employee{}, fmt.Errorf("failed to get schedule group: %w", err)
		}
	}

	today := civilDate(time.Now(), s.loc)
	end := today
	if filter.EndDate != "" {
		end, err = time.ParseInLocation("2006-01-02", filter.EndDate, s.loc)
		if err != nil {
			return walkResult{}, employee.Employee{}, timesheet.ErrInvalidDateRange
		}
	}
	start := end.AddDate(0, 0, -defaultWindowDays)
	if filter.StartDate != "" {
		start, err = time.ParseInLocation("2006-01-02", filter.StartDate, s.loc)
		if err != nil {
			return walkResult{}, employee.Employee{}, timesheet.ErrInvalidDateRange
		}
	}
	if start.After(end) {
		return walkResult{}, employee.Employee{}, timesheet.ErrInvalidDateRange
	}

	var idx *ExceptionIndex
	if emp.CompanyID != nil {
		holidays, err := s.CalendarRepository.ListHolidays(ctx, *emp.CompanyID)
		if err != nil {
			return walkResult{}, employee.Employee{}, fmt.Errorf("failed to list holidays: %w", err)
		}
		recesses, err := s.CalendarRepository.ListRecesses(ctx, *emp.CompanyID)
		if err != nil {
			return walkResult{}, employee.Employee{}, fmt.Errorf("failed to list recesses: %w", err)
		}
		idx = NewExceptionIndex(holidays, recesses, s.loc)
	} else {
		idx = NewExceptionIndex(nil, nil, s.loc)
	}

	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, emp.ID, start, end.AddDate(0, 0, 1))
	if err != nil {
		return walkResult{}, employee.Employee{}, fmt.Errorf("failed to list punches: %w", err)
	}
	byDay := make(map[string][]punch.Punch)
	for _, p := range punches {
		key := dayKey(p.PunchedAt, s.loc)
		byDay[key] = append(byDay[key], p)
	}

	res := walk(walkInput{
		Schedule:     ResolveSchedule(emp, group),
		Exceptions:   idx,
		PunchesByDay: byDay,
		Start:        start,
		End:          end,
		Today:        today,
		AccrualStart: emp.AccrualStartDate,
		Mode:         s.mode,
		IncludeAll:   includeAll,
		Loc:          s.loc,
	})
	return res, emp, nil
}

func balanceLabel(r dayRow) string {
	if !r.Resolved {
		return InProgressLabel
	}
	return FormatBalance(r.BalanceMin)
}
