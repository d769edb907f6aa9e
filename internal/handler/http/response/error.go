package response

import (
	"errors"
	"net/http"

	"github.com/pontoflow/ponto-backend-go/internal/domain/auth"
	"github.com/pontoflow/ponto-backend-go/internal/domain/calendar"
	"github.com/pontoflow/ponto-backend-go/internal/domain/company"
	"github.com/pontoflow/ponto-backend-go/internal/domain/employee"
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
	"github.com/pontoflow/ponto-backend-go/internal/domain/schedule"
	"github.com/pontoflow/ponto-backend-go/internal/domain/timesheet"
	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already exists")
	case errors.Is(err, employee.ErrNoCompanyAssigned):
		Forbidden(w, "Employee has no company assigned")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCNPJExists):
		Conflict(w, "CNPJ already registered")

	// Punch domain errors
	case errors.Is(err, punch.ErrInvalidKind):
		BadRequest(w, "Invalid punch kind", nil)
	case errors.Is(err, punch.ErrDuplicatePunch):
		Conflict(w, "A punch already exists at this timestamp")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrGroupNotFound):
		NotFound(w, "Schedule group not found")
	case errors.Is(err, schedule.ErrGroupNameExists):
		Conflict(w, "Schedule group name already exists")

	// Calendar domain errors
	case errors.Is(err, calendar.ErrHolidayExists):
		Conflict(w, "A holiday already exists on this date")
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrRecessNotFound):
		NotFound(w, "Recess not found")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrNoPunchData):
		NotFound(w, "No punch data in the requested window")
	case errors.Is(err, timesheet.ErrInvalidDateRange):
		BadRequest(w, "Invalid report date range", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
