package calendar

import "context"

// CalendarService defines admin operations over company exception days.
type CalendarService interface {
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	ListRecesses(ctx context.Context) ([]RecessResponse, error)
	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	CreateRecess(ctx context.Context, req CreateRecessRequest) (RecessResponse, error)
}
