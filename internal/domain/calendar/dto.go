package calendar

import (
	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date  string `json:"data"`
	Label string `json:"descricao"`
}

func (r CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "data", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "descricao", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateRecessRequest struct {
	Label     string `json:"descricao"`
	StartDate string `json:"data_inicio"`
	EndDate   string `json:"data_fim"`
}

func (r CreateRecessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{Field: "descricao", Message: "is required"})
	}
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "data_inicio", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "data_fim", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "data_fim", Message: "must not be before data_inicio"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID    string `json:"id"`
	Date  string `json:"data"`
	Label string `json:"descricao"`
}

type RecessResponse struct {
	ID        string `json:"id"`
	Label     string `json:"descricao"`
	StartDate string `json:"data_inicio"`
	EndDate   string `json:"data_fim"`
}
