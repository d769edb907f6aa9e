package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/timesheet"
)

func civil(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return d
}

func dayPunches(t *testing.T, day string, clocks ...string) []punch.Punch {
	t.Helper()
	kinds := []punch.Kind{
		punch.KindEntrada, punch.KindSaidaAlmoco,
		punch.KindVoltaAlmoco, punch.KindSaida,
	}
	// Two punches mean a simple in/out day.
	if len(clocks) == 2 {
		kinds = []punch.Kind{punch.KindEntrada, punch.KindSaida}
	}
	punches := make([]punch.Punch, 0, len(clocks))
	for i, c := range clocks {
		at, err := time.Parse("2006-01-02 15:04", day+" "+c)
		require.NoError(t, err)
		punches = append(punches, punch.Punch{PunchedAt: at, Kind: kinds[i]})
	}
	return punches
}

func baseInput(t *testing.T) walkInput {
	return walkInput{
		Schedule: ResolvedSchedule{
			WorkDays:     employee.WeekdaysMonFri.Set(),
			DailyMinutes: 480,
		},
		Exceptions:   NewExceptionIndex(nil, nil, time.UTC),
		PunchesByDay: map[string][]punch.Punch{},
		Start:        civil(t, "2025-11-03"), // Monday
		End:          civil(t, "2025-11-07"), // Friday
		Today:        civil(t, "2025-11-10"),
		Mode:         PairingLenient,
		Loc:          time.UTC,
	}
}

func TestWalk_StandardDayBalancesToZero(t *testing.T) {
	in := baseInput(t)
	in.End = in.Start
	in.PunchesByDay["2025-11-03"] = dayPunches(t, "2025-11-03", "08:00", "12:00", "13:00", "17:00")

	res := walk(in)

	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.Equal(t, timesheet.TagNormal, row.Tag)
	assert.Equal(t, 480, row.WorkedMin)
	assert.Equal(t, 480, row.ExpectedMin)
	assert.Zero(t, row.BalanceMin)
	assert.Zero(t, res.TotalMin)
}

func TestWalk_OvertimeAndDeficitAccumulate(t *testing.T) {
	in := baseInput(t)
	in.End = civil(t, "2025-11-04")
	in.PunchesByDay["2025-11-03"] = dayPunches(t, "2025-11-03", "08:00", "17:00") // 540, +60
	in.PunchesByDay["2025-11-04"] = dayPunches(t, "2025-11-04", "09:00", "16:00") // 420, -60

	res := walk(in)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, 60, res.Rows[0].BalanceMin)
	assert.Equal(t, -60, res.Rows[1].BalanceMin)
	assert.Zero(t, res.TotalMin)
}

func TestWalk_HolidayHasZeroExpected(t *testing.T) {
	holidays := []calendar.Holiday{
		{Date: civil(t, "2025-11-05"), Label: "Feriado Municipal"}, // Wednesday
	}
	in := baseInput(t)
	in.Exceptions = NewExceptionIndex(holidays, nil, time.UTC)
	// Worked on the holiday: everything counts as overtime.
	in.PunchesByDay["2025-11-05"] = dayPunches(t, "2025-11-05", "09:00", "11:00")

	res := walk(in)

	var holidayRow *dayRow
	for i := range res.Rows {
		if res.Rows[i].Tag == timesheet.TagFeriado {
			holidayRow = &res.Rows[i]
		}
	}
	require.NotNil(t, holidayRow)
	assert.Equal(t, "Feriado Municipal", holidayRow.Label)
	assert.Zero(t, holidayRow.ExpectedMin)
	assert.Equal(t, 120, holidayRow.WorkedMin)
	assert.Equal(t, 120, holidayRow.BalanceMin)
}

func TestWalk_HolidayBeatsRecess(t *testing.T) {
	holidays := []calendar.Holiday{{Date: civil(t, "2025-12-25"), Label: "Natal"}}
	recesses := []calendar.Recess{{
		Label:     "Recesso de Fim de Ano",
		StartDate: civil(t, "2025-12-22"),
		EndDate:   civil(t, "2025-12-31"),
	}}
	in := baseInput(t)
	in.Exceptions = NewExceptionIndex(holidays, recesses, time.UTC)
	in.Start = civil(t, "2025-12-24")
	in.End = civil(t, "2025-12-26")
	in.Today = civil(t, "2026-01-05")
	in.IncludeAll = true

	res := walk(in)

	require.Len(t, res.Rows, 3)
	assert.Equal(t, timesheet.TagRecesso, res.Rows[0].Tag)
	assert.Equal(t, timesheet.TagFeriado, res.Rows[1].Tag)
	assert.Equal(t, "Natal", res.Rows[1].Label)
	assert.Equal(t, timesheet.TagRecesso, res.Rows[2].Tag)
}

func TestWalk_AbsenceOnPastWorkday(t *testing.T) {
	in := baseInput(t)
	in.End = in.Start // Monday with no punches, strictly before today

	res := walk(in)

	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.Equal(t, timesheet.TagFalta, row.Tag)
	assert.Equal(t, -480, row.BalanceMin)
	assert.Equal(t, -480, res.TotalMin)
}

func TestWalk_DayOffWithoutPunchesOmittedFromReport(t *testing.T) {
	in := baseInput(t)
	in.Start = civil(t, "2025-11-08") // Saturday
	in.End = civil(t, "2025-11-09")   // Sunday

	res := walk(in)

	assert.Empty(t, res.Rows)
	assert.Zero(t, res.TotalMin)
}

func TestWalk_IncludeAllEmitsEveryCalendarDay(t *testing.T) {
	in := baseInput(t)
	in.Start = civil(t, "2025-11-03")
	in.End = civil(t, "2025-11-09")
	in.IncludeAll = true

	res := walk(in)

	require.Len(t, res.Rows, 7)
	assert.Equal(t, timesheet.TagFolga, res.Rows[5].Tag) // Saturday
	assert.Equal(t, timesheet.TagFolga, res.Rows[6].Tag) // Sunday
}

func TestWalk_TodayWithoutClosingPunchIsUnresolved(t *testing.T) {
	in := baseInput(t)
	in.Today = civil(t, "2025-11-05")
	in.End = in.Today
	in.PunchesByDay["2025-11-03"] = dayPunches(t, "2025-11-03", "08:00", "12:00", "13:00", "17:00")
	in.PunchesByDay["2025-11-05"] = []punch.Punch{
		dayPunches(t, "2025-11-05", "08:00", "12:00", "13:00", "17:00")[0], // ENTRADA only
	}

	res := walk(in)

	// Monday resolved, Tuesday FALTA, Wednesday (today) in progress.
	require.Len(t, res.Rows, 3)
	today := res.Rows[2]
	assert.Equal(t, timesheet.TagEmAndamento, today.Tag)
	assert.False(t, today.Resolved)
	assert.Zero(t, today.BalanceMin)
	assert.Equal(t, -480, res.TotalMin) // only Tuesday's absence counts
}

func TestWalk_TodayClosedWithSaidaIsResolved(t *testing.T) {
	in := baseInput(t)
	in.Today = civil(t, "2025-11-03")
	in.End = in.Today
	in.PunchesByDay["2025-11-03"] = dayPunches(t, "2025-11-03", "08:00", "12:00", "13:00", "17:30")

	res := walk(in)

	require.Len(t, res.Rows, 1)
	assert.True(t, res.Rows[0].Resolved)
	assert.Equal(t, 30, res.Rows[0].BalanceMin)
	assert.Equal(t, 30, res.TotalMin)
}

func TestWalk_TodayWithoutPunchesIsNotAnAbsence(t *testing.T) {
	in := baseInput(t)
	in.Today = civil(t, "2025-11-03")
	in.End = in.Today

	res := walk(in)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, timesheet.TagEmAndamento, res.Rows[0].Tag)
	assert.Zero(t, res.TotalMin)
}

func TestWalk_AccrualStartExcludesEarlierDays(t *testing.T) {
	in := baseInput(t)
	in.PunchesByDay["2025-11-03"] = dayPunches(t, "2025-11-03", "08:00", "17:00") // +60, before accrual
	in.PunchesByDay["2025-11-06"] = dayPunches(t, "2025-11-06", "08:00", "17:00") // +60
	accrual := civil(t, "2025-11-05")
	in.AccrualStart = &accrual

	res := walk(in)

	// 05 (FALTA), 06 (+60), 07 (FALTA); 03 and 04 do not exist.
	require.Len(t, res.Rows, 3)
	assert.Equal(t, civil(t, "2025-11-05"), res.Rows[0].Date)
	assert.Equal(t, -480+60-480, res.TotalMin)
}

func TestExceptionIndex_DateColumnsKeepTheirCalendarDayWestOfUTC(t *testing.T) {
	// DATE columns scan as midnight UTC even when the engine runs in a
	// western location.
	loc := time.FixedZone("BRT", -3*60*60)
	holidays := []calendar.Holiday{
		{Date: time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC), Label: "Consciência Negra"},
	}
	recesses := []calendar.Recess{{
		Label:     "Recesso de Fim de Ano",
		StartDate: time.Date(2025, time.December, 22, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, time.December, 23, 0, 0, 0, 0, time.UTC),
	}}
	idx := NewExceptionIndex(holidays, recesses, loc)

	kind, label := idx.Classify(time.Date(2025, time.November, 20, 0, 0, 0, 0, loc))
	assert.Equal(t, ExceptionHoliday, kind)
	assert.Equal(t, "Consciência Negra", label)

	kind, _ = idx.Classify(time.Date(2025, time.November, 19, 0, 0, 0, 0, loc))
	assert.Equal(t, ExceptionNone, kind)

	kind, _ = idx.Classify(time.Date(2025, time.December, 22, 0, 0, 0, 0, loc))
	assert.Equal(t, ExceptionRecess, kind)
	kind, _ = idx.Classify(time.Date(2025, time.December, 21, 0, 0, 0, 0, loc))
	assert.Equal(t, ExceptionNone, kind)
}

func TestWalk_AccrualStartDateColumnWestOfUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	in := walkInput{
		Schedule: ResolvedSchedule{
			WorkDays:     employee.WeekdaysMonFri.Set(),
			DailyMinutes: 480,
		},
		Exceptions:   NewExceptionIndex(nil, nil, loc),
		PunchesByDay: map[string][]punch.Punch{},
		Start:        time.Date(2025, time.November, 3, 0, 0, 0, 0, loc),
		End:          time.Date(2025, time.November, 7, 0, 0, 0, 0, loc),
		Today:        time.Date(2025, time.November, 10, 0, 0, 0, 0, loc),
		Mode:         PairingLenient,
		Loc:          loc,
	}
	accrual := time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC)
	in.AccrualStart = &accrual

	res := walk(in)

	// Nov 4 in loc is still Nov 5 UTC minus three hours; it must not leak
	// into the window.
	require.Len(t, res.Rows, 3)
	assert.Equal(t, time.Date(2025, time.November, 5, 0, 0, 0, 0, loc), res.Rows[0].Date)
}

func TestWalk_FutureDaysAreNotAccrued(t *testing.T) {
	in := baseInput(t)
	in.Today = civil(t, "2025-11-05") // Wednesday
	in.End = civil(t, "2025-11-28")
	in.PunchesByDay["2025-11-03"] = dayPunches(t, "2025-11-03", "08:00", "17:00")
	in.IncludeAll = true

	res := walk(in)

	require.Len(t, res.Rows, 3)
	assert.Equal(t, civil(t, "2025-11-05"), res.Rows[len(res.Rows)-1].Date)
	// Monday +01:00, Tuesday absence, today unresolved; nothing beyond.
	assert.Equal(t, 60-480, res.TotalMin)
}

func TestWalk_IsIdempotent(t *testing.T) {
	in := baseInput(t)
	in.PunchesByDay["2025-11-03"] = dayPunches(t, "2025-11-03", "08:00", "12:00", "13:00", "17:00")

	first := walk(in)
	second := walk(in)

	assert.Equal(t, first, second)
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "+01:30", FormatBalance(90))
	assert.Equal(t, "-08:00", FormatBalance(-480))
	assert.Equal(t, "+00:00", FormatBalance(0))
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "08:00", FormatMinutes(480))
	assert.Equal(t, "00:05", FormatMinutes(5))
	assert.Equal(t, "26:03", FormatMinutes(26*60+3))
}
