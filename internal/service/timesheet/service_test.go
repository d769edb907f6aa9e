package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoflow/ponto-backend-go/internal/domain/timesheet"
)

type stubPunchRepo struct {
	punches []punch.Punch
}

func (s *stubPunchRepo) Create(_ context.Context, p punch.Punch) (punch.Punch, error) {
	return p, nil
}

func (s *stubPunchRepo) ListByEmployeeAndRange(_ context.Context, _ string, from, to time.Time) ([]punch.Punch, error) {
	var out []punch.Punch
	for _, p := range s.punches {
		if !p.PunchedAt.Before(from) && p.PunchedAt.Before(to) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPunchRepo) ExistsAt(_ context.Context, _ string, _ time.Time) (bool, error) {
	return false, nil
}

type stubEmployeeRepo struct {
	emp employee.Employee
}

func (s *stubEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if id != s.emp.ID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.emp, nil
}

func (s *stubEmployeeRepo) GetByUsername(_ context.Context, _ string) (employee.Employee, error) {
	return s.emp, nil
}

func (s *stubEmployeeRepo) Create(_ context.Context, e employee.Employee, _ string) (employee.Employee, error) {
	return e, nil
}

func (s *stubEmployeeRepo) SetAccrualStartDate(_ context.Context, _ string, _ time.Time) error {
	return nil
}

type stubGroupRepo struct {
	group *schedule.Group
}

func (s *stubGroupRepo) GetByID(_ context.Context, _ string) (schedule.Group, error) {
	if s.group == nil {
		return schedule.Group{}, schedule.ErrGroupNotFound
	}
	return *s.group, nil
}

func (s *stubGroupRepo) List(_ context.Context) ([]schedule.Group, error) {
	return nil, nil
}

func (s *stubGroupRepo) Create(_ context.Context, g schedule.Group) (schedule.Group, error) {
	return g, nil
}

type stubCalendarRepo struct {
	holidays []calendar.Holiday
	recesses []calendar.Recess
}

func (s *stubCalendarRepo) ListHolidays(_ context.Context, _ string) ([]calendar.Holiday, error) {
	return s.holidays, nil
}

func (s *stubCalendarRepo) ListRecesses(_ context.Context, _ string) ([]calendar.Recess, error) {
	return s.recesses, nil
}

func (s *stubCalendarRepo) CreateHoliday(_ context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	return h, nil
}

func (s *stubCalendarRepo) CreateRecess(_ context.Context, r calendar.Recess) (calendar.Recess, error) {
	return r, nil
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"employee_id": employeeID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func testEmployee() employee.Employee {
	companyID := "company-1"
	return employee.Employee{
		ID:        "emp-1",
		CompanyID: &companyID,
		Username:  "kleisley",
	}
}

func newTestService(punches *stubPunchRepo, cal *stubCalendarRepo, pageRows int) timesheet.TimesheetService {
	return NewTimesheetService(
		punches,
		&stubEmployeeRepo{emp: testEmployee()},
		&stubGroupRepo{},
		cal,
		time.UTC,
		PairingLenient,
		pageRows,
	)
}

func TestReport_NewestFirstWithRunningTotal(t *testing.T) {
	punches := &stubPunchRepo{punches: dayPunches(t, "2025-11-03", "08:00", "17:00")}
	svc := newTestService(punches, &stubCalendarRepo{}, 40)

	got, err := svc.Report(authedContext(t, "emp-1"), timesheet.ReportFilter{
		StartDate: "2025-11-03",
		EndDate:   "2025-11-05",
	})
	require.NoError(t, err)

	// Monday worked +01:00; Tuesday and Wednesday are absences.
	assert.Equal(t, "-15:00", got.TotalBalance)
	require.Len(t, got.Rows, 3)
	assert.Equal(t, "05/11", got.Rows[0].DateLabel)
	assert.Equal(t, string(timesheet.TagFalta), got.Rows[0].Tag)
	assert.Equal(t, "00:00", got.Rows[0].Worked)
	assert.Equal(t, "-08:00", got.Rows[0].DayBalance)
	assert.Equal(t, "03/11", got.Rows[2].DateLabel)
	assert.Equal(t, "+01:00", got.Rows[2].DayBalance)
	assert.Equal(t, "09:00", got.Rows[2].Worked)
}

func TestReport_HolidayRowCarriesLabel(t *testing.T) {
	cal := &stubCalendarRepo{holidays: []calendar.Holiday{
		{Date: civil(t, "2025-11-20"), Label: "Consciência Negra"},
	}}
	svc := newTestService(&stubPunchRepo{}, cal, 40)

	got, err := svc.Report(authedContext(t, "emp-1"), timesheet.ReportFilter{
		StartDate: "2025-11-20",
		EndDate:   "2025-11-20",
	})
	require.NoError(t, err)

	require.Len(t, got.Rows, 1)
	assert.Equal(t, string(timesheet.TagFeriado), got.Rows[0].Tag)
	assert.Equal(t, "Consciência Negra", got.Rows[0].Label)
	assert.Equal(t, "+00:00", got.TotalBalance)
}

func TestReport_StartAfterEndRejected(t *testing.T) {
	svc := newTestService(&stubPunchRepo{}, &stubCalendarRepo{}, 40)

	_, err := svc.Report(authedContext(t, "emp-1"), timesheet.ReportFilter{
		StartDate: "2025-11-10",
		EndDate:   "2025-11-03",
	})
	assert.ErrorIs(t, err, timesheet.ErrInvalidDateRange)
}

func TestReport_MalformedDateRejectedBeforeComputation(t *testing.T) {
	svc := newTestService(&stubPunchRepo{}, &stubCalendarRepo{}, 40)

	_, err := svc.Report(authedContext(t, "emp-1"), timesheet.ReportFilter{
		StartDate: "03/11/2025",
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, timesheet.ErrInvalidDateRange)
}

func TestReport_TodayRowShowsInProgress(t *testing.T) {
	svc := newTestService(&stubPunchRepo{}, &stubCalendarRepo{}, 40)

	got, err := svc.Report(authedContext(t, "emp-1"), timesheet.ReportFilter{})
	require.NoError(t, err)

	// With no punches the current day is still open; it heads the report
	// without a settled balance.
	require.NotEmpty(t, got.Rows)
	assert.Equal(t, string(timesheet.TagEmAndamento), got.Rows[0].Tag)
	assert.Equal(t, InProgressLabel, got.Rows[0].DayBalance)
	assert.Equal(t, "00:00", got.Rows[0].Worked)
}

func TestReport_WithoutClaimsFails(t *testing.T) {
	svc := newTestService(&stubPunchRepo{}, &stubCalendarRepo{}, 40)

	_, err := svc.Report(context.Background(), timesheet.ReportFilter{})
	assert.Error(t, err)
}

func TestExport_EveryDayPresentAndPaginated(t *testing.T) {
	punches := &stubPunchRepo{punches: dayPunches(t, "2025-11-03", "08:00", "12:00", "13:00", "17:00")}
	svc := newTestService(punches, &stubCalendarRepo{}, 3)

	got, err := svc.Export(authedContext(t, "emp-1"), timesheet.ReportFilter{
		StartDate: "2025-11-03",
		EndDate:   "2025-11-09",
	})
	require.NoError(t, err)

	assert.Equal(t, "kleisley", got.EmployeeName)
	assert.Equal(t, "03/11/2025", got.StartDate)
	assert.Equal(t, "09/11/2025", got.EndDate)

	require.Len(t, got.Pages, 3)
	assert.Len(t, got.Pages[0].Rows, 3)
	assert.Len(t, got.Pages[1].Rows, 3)
	assert.Len(t, got.Pages[2].Rows, 1)
	assert.Equal(t, 3, got.Pages[2].Number)

	firstRow := got.Pages[0].Rows[0]
	assert.Equal(t, "Segunda-feira", firstRow.Weekday)
	assert.Equal(t, "08:00", firstRow.Worked)

	// Saturday shows up as a day off in the export.
	saturday := got.Pages[1].Rows[2]
	assert.Equal(t, string(timesheet.TagFolga), saturday.Tag)
	assert.Equal(t, "Sábado", saturday.Weekday)
}

func TestExport_WindowBeforeAccrualStartHasNoData(t *testing.T) {
	accrual := civil(t, "2026-01-01")
	emp := testEmployee()
	emp.AccrualStartDate = &accrual
	svc := NewTimesheetService(
		&stubPunchRepo{},
		&stubEmployeeRepo{emp: emp},
		&stubGroupRepo{},
		&stubCalendarRepo{},
		time.UTC,
		PairingLenient,
		40,
	)

	_, err := svc.Export(authedContext(t, "emp-1"), timesheet.ReportFilter{
		StartDate: "2025-11-03",
		EndDate:   "2025-11-07",
	})
	assert.ErrorIs(t, err, timesheet.ErrNoPunchData)
}
