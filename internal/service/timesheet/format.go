package timesheet

import (
	"fmt"
	"time"
)

// InProgressLabel is the placeholder shown for today's unresolved balance.
const InProgressLabel = "Em andamento"

// FormatMinutes renders a non-negative minute count as "HH:MM".
func FormatMinutes(m int) string {
	if m < 0 {
		m = -m
	}
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// FormatBalance renders a signed minute balance as "±HH:MM"; the sign is
// always shown and zero renders "+00:00".
func FormatBalance(m int) string {
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}

var weekdayNamesPT = map[time.Weekday]string{
	time.Monday:    "Segunda-feira",
	time.Tuesday:   "Terça-feira",
	time.Wednesday: "Quarta-feira",
	time.Thursday:  "Quinta-feira",
	time.Friday:    "Sexta-feira",
	time.Saturday:  "Sábado",
	time.Sunday:    "Domingo",
}
