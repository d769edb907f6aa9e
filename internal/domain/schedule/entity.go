package schedule

import (
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
)

// Group is a named, reusable weekly template ("Escala") shared by
// employees: seven work-day flags plus a default daily duration.
type Group struct {
	ID           string
	Name         string
	DailyMinutes int
	WorkdayFlags employee.WeekdayFlags
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
