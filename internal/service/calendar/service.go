package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
)

type CalendarServiceImpl struct {
	calendar.CalendarRepository
	loc *time.Location
}

func NewCalendarService(calendarRepo calendar.CalendarRepository, loc *time.Location) calendar.CalendarService {
	return &CalendarServiceImpl{CalendarRepository: calendarRepo, loc: loc}
}

// ListHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context) ([]calendar.HolidayResponse, error) {
	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	holidays, err := s.CalendarRepository.ListHolidays(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, calendar.HolidayResponse{
			ID:    h.ID,
			Date:  h.Date.Format("2006-01-02"),
			Label: h.Label,
		})
	}
	return responses, nil
}

// ListRecesses implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListRecesses(ctx context.Context) ([]calendar.RecessResponse, error) {
	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return nil, err
	}

	recesses, err := s.CalendarRepository.ListRecesses(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recesses: %w", err)
	}

	responses := make([]calendar.RecessResponse, 0, len(recesses))
	for _, r := range recesses {
		responses = append(responses, calendar.RecessResponse{
			ID:        r.ID,
			Label:     r.Label,
			StartDate: r.StartDate.Format("2006-01-02"),
			EndDate:   r.EndDate.Format("2006-01-02"),
		})
	}
	return responses, nil
}

// CreateHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) CreateHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}
	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return calendar.HolidayResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, s.loc)
	if err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	created, err := s.CalendarRepository.CreateHoliday(ctx, calendar.Holiday{
		CompanyID: companyID,
		Date:      date,
		Label:     req.Label,
	})
	if err != nil {
		return calendar.HolidayResponse{}, err
	}

	return calendar.HolidayResponse{
		ID:    created.ID,
		Date:  created.Date.Format("2006-01-02"),
		Label: created.Label,
	}, nil
}

// CreateRecess implements calendar.CalendarService.
func (s *CalendarServiceImpl) CreateRecess(ctx context.Context, req calendar.CreateRecessRequest) (calendar.RecessResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.RecessResponse{}, err
	}
	companyID, err := companyFromClaims(ctx)
	if err != nil {
		return calendar.RecessResponse{}, err
	}

	start, err := time.ParseInLocation("2006-01-02", req.StartDate, s.loc)
	if err != nil {
		return calendar.RecessResponse{}, fmt.Errorf("failed to parse recess start: %w", err)
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, s.loc)
	if err != nil {
		return calendar.RecessResponse{}, fmt.Errorf("failed to parse recess end: %w", err)
	}

	created, err := s.CalendarRepository.CreateRecess(ctx, calendar.Recess{
		CompanyID: companyID,
		Label:     req.Label,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return calendar.RecessResponse{}, err
	}

	return calendar.RecessResponse{
		ID:        created.ID,
		Label:     created.Label,
		StartDate: created.StartDate.Format("2006-01-02"),
		EndDate:   created.EndDate.Format("2006-01-02"),
	}, nil
}

func companyFromClaims(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}
