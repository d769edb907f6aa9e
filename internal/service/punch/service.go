package punch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/pontoflow/ponto-backend-go/internal/domain/company"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/utils"
	timesheetService "github.com/pontoflow/ponto-backend-go/internal/service/timesheet"
)

type PunchServiceImpl struct {
	punch.PunchRepository
	employee.EmployeeRepository
	company.CompanyRepository
	loc *time.Location
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	loc *time.Location,
) punch.PunchService {
	return &PunchServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		CompanyRepository:  companyRepo,
		loc:                loc,
	}
}

// Register implements punch.PunchService. The backend stamps the punch
// time; the geofence result is recorded but a punch is never rejected for
// being outside the radius.
func (s *PunchServiceImpl) Register(ctx context.Context, req punch.RegisterPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.employeeFromClaims(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	nowUTC := time.Now().UTC()

	p := punch.Punch{
		EmployeeID:    emp.ID,
		PunchedAt:     nowUTC,
		Kind:          punch.Kind(req.Kind),
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		LocationValid: s.locationValid(ctx, emp, req.Latitude, req.Longitude),
	}

	created, err := s.PunchRepository.Create(ctx, p)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return mapPunchToResponse(created, s.loc), nil
}

// Status implements punch.PunchService.
func (s *PunchServiceImpl) Status(ctx context.Context) (punch.StatusResponse, error) {
	emp, err := s.employeeFromClaims(ctx)
	if err != nil {
		return punch.StatusResponse{}, err
	}

	now := time.Now().In(s.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	todays, err := s.PunchRepository.ListByEmployeeAndRange(ctx, emp.ID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return punch.StatusResponse{}, fmt.Errorf("failed to list today's punches: %w", err)
	}

	history := make([]punch.PunchResponse, 0, len(todays))
	for _, p := range todays {
		history = append(history, mapPunchToResponse(p, s.loc))
	}

	var last *punch.Punch
	var lastResp *punch.PunchResponse
	if len(todays) > 0 {
		last = &todays[len(todays)-1]
		lastResp = &history[len(history)-1]
	}

	next := ProjectNext(last)

	// Only closed intervals count toward the elapsed time; an open
	// interval is not projected to "now".
	elapsed, _ := timesheetService.WorkedMinutes(todays, timesheetService.PairingStrict)

	return punch.StatusResponse{
		History:     history,
		LastPunch:   lastResp,
		NextAction:  next.Action,
		ButtonLabel: next.Label,
		WorkedToday: timesheetService.FormatMinutes(elapsed),
	}, nil
}

func (s *PunchServiceImpl) employeeFromClaims(ctx context.Context) (employee.Employee, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return employee.Employee{}, fmt.Errorf("employee_id claim is missing or invalid")
	}
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// locationValid evaluates the punch coordinates against the company's
// office radius. Hybrid employees and employees with no company or office
// coordinates are always valid.
func (s *PunchServiceImpl) locationValid(ctx context.Context, emp employee.Employee, lat, lon *float64) bool {
	if emp.HybridWork || emp.CompanyID == nil || lat == nil || lon == nil {
		return true
	}
	comp, err := s.CompanyRepository.GetByID(ctx, *emp.CompanyID)
	if err != nil || comp.OfficeLatitude == nil || comp.OfficeLongitude == nil {
		return true
	}
	distance := utils.CalculateHaversineDistance(*lat, *lon, *comp.OfficeLatitude, *comp.OfficeLongitude)
	return distance <= float64(comp.AllowedRadiusMeters)
}

func mapPunchToResponse(p punch.Punch, loc *time.Location) punch.PunchResponse {
	return punch.PunchResponse{
		ID:             p.ID,
		PunchedAt:      p.PunchedAt.In(loc).Format(time.RFC3339),
		Kind:           string(p.Kind),
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		LocationValid:  p.LocationValid,
		ManuallyEdited: p.ManuallyEdited,
	}
}
