package fixtures

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
)

// DemoUsername is the employee the demo punches belong to.
const DemoUsername = "kleisley"

// DemoStartDate is the first candidate day of the imported sequence.
var DemoStartDate = time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)

const importNote = "Importação Automática"

// WorkedDay is one imported work day: clock-in time, lunch length and
// clock-out time. A zero lunch means no lunch punches that day.
type WorkedDay struct {
	ClockIn      string
	LunchMinutes int
	ClockOut     string
}

// DemoWorkedDays is laid onto consecutive business days starting at
// DemoStartDate; weekends and the demo holidays are skipped.
var DemoWorkedDays = []WorkedDay{
	{"08:30", 20, "17:57"},
	{"08:30", 25, "17:24"},
	{"08:30", 30, "15:50"},
	{"08:30", 30, "15:45"},
	{"08:30", 20, "17:23"},
	{"08:30", 25, "17:05"},
	{"12:56", 0, "17:00"},
	{"08:33", 30, "15:15"},
	{"08:32", 22, "16:33"},
	{"08:25", 23, "15:55"},
	{"08:30", 30, "16:02"},
	{"08:23", 40, "15:06"},
	{"08:32", 30, "15:45"},
	{"08:11", 10, "15:00"},
	{"08:26", 20, "16:01"},
	{"08:37", 17, "17:00"},
	{"08:05", 0, "14:05"},
	{"08:30", 25, "17:06"},
	{"08:20", 33, "15:50"},
	{"08:26", 12, "16:27"},
	{"08:30", 30, "15:15"},
	{"08:28", 30, "15:55"},
	{"08:36", 20, "15:15"},
	{"08:28", 20, "16:00"},
	{"08:24", 26, "17:05"},
	{"08:30", 10, "17:15"},
	{"08:30", 20, "15:35"},
	{"08:30", 20, "17:00"},
	{"08:30", 20, "17:05"},
}

// DemoHoliday pairs an exception date with its label.
type DemoHoliday struct {
	Date  time.Time
	Label string
}

// DemoHolidays are skipped by the import and registered on the company
// calendar so reports classify them.
var DemoHolidays = []DemoHoliday{
	{time.Date(2025, time.November, 2, 0, 0, 0, 0, time.UTC), "Finados"},
	{time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC), "Proclamação da República"},
	{time.Date(2025, time.November, 20, 0, 0, 0, 0, time.UTC), "Consciência Negra"},
	{time.Date(2025, time.December, 8, 0, 0, 0, 0, time.UTC), "Imaculada Conceição"},
	{time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), "Natal"},
}

// SeedHolidays registers the demo holidays for the company, skipping any
// that already exist.
func SeedHolidays(ctx context.Context, repo calendar.CalendarRepository, companyID string) (int, error) {
	created := 0
	for _, h := range DemoHolidays {
		_, err := repo.CreateHoliday(ctx, calendar.Holiday{
			CompanyID: companyID,
			Date:      h.Date,
			Label:     h.Label,
		})
		if errors.Is(err, calendar.ErrHolidayExists) {
			continue
		}
		if err != nil {
			return created, fmt.Errorf("failed to seed holiday %s: %w", h.Label, err)
		}
		created++
	}
	return created, nil
}

type punchEvent struct {
	at   time.Time
	kind punch.Kind
}

// SeedPunches lays DemoWorkedDays onto business days and inserts the punch
// sequence for each. Insertion is idempotent: days already imported are
// silently skipped via the duplicate-suppressing create.
func SeedPunches(ctx context.Context, repo punch.PunchRepository, employeeID string, loc *time.Location) (int, error) {
	holidaySet := make(map[string]bool, len(DemoHolidays))
	for _, h := range DemoHolidays {
		holidaySet[h.Date.Format("2006-01-02")] = true
	}

	cursor := time.Date(
		DemoStartDate.Year(), DemoStartDate.Month(), DemoStartDate.Day(),
		0, 0, 0, 0, loc,
	)
	created := 0

	for _, day := range DemoWorkedDays {
		for cursor.Weekday() == time.Saturday || cursor.Weekday() == time.Sunday ||
			holidaySet[cursor.Format("2006-01-02")] {
			cursor = cursor.AddDate(0, 0, 1)
		}

		inH, inM, err := parseClock(day.ClockIn)
		if err != nil {
			return created, err
		}
		outH, outM, err := parseClock(day.ClockOut)
		if err != nil {
			return created, err
		}

		events := []punchEvent{
			{clockTime(cursor, inH, inM, loc), punch.KindEntrada},
		}

		if day.LunchMinutes > 0 {
			lunchHour := 12
			if inH >= 12 {
				lunchHour = inH + 1
			}
			lunchOut := clockTime(cursor, lunchHour, 0, loc)
			events = append(events,
				punchEvent{lunchOut, punch.KindSaidaAlmoco},
				punchEvent{lunchOut.Add(time.Duration(day.LunchMinutes) * time.Minute), punch.KindVoltaAlmoco},
			)
		}

		events = append(events, punchEvent{clockTime(cursor, outH, outM, loc), punch.KindSaida})

		note := importNote
		for _, ev := range events {
			_, err := repo.Create(ctx, punch.Punch{
				EmployeeID:     employeeID,
				PunchedAt:      ev.at.UTC(),
				Kind:           ev.kind,
				LocationValid:  true,
				ManuallyEdited: true,
				Note:           &note,
			})
			if errors.Is(err, punch.ErrDuplicatePunch) {
				continue
			}
			if err != nil {
				return created, fmt.Errorf("failed to seed punch at %s: %w", ev.at, err)
			}
			created++
		}

		cursor = cursor.AddDate(0, 0, 1)
	}

	return created, nil
}

func parseClock(s string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	return t.Hour(), t.Minute(), nil
}

func clockTime(day time.Time, hour, minute int, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
}
