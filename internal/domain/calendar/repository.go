package calendar

import "context"

type CalendarRepository interface {
	ListHolidays(ctx context.Context, companyID string) ([]Holiday, error)
	ListRecesses(ctx context.Context, companyID string) ([]Recess, error)
	CreateHoliday(ctx context.Context, h Holiday) (Holiday, error)
	CreateRecess(ctx context.Context, r Recess) (Recess, error)
}
