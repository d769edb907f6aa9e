package schedule

import (
	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

type CreateGroupRequest struct {
	Name         string `json:"nome"`
	DailyMinutes int    `json:"carga_horaria_minutos"`
	Monday       bool   `json:"trabalha_segunda"`
	Tuesday      bool   `json:"trabalha_terca"`
	Wednesday    bool   `json:"trabalha_quarta"`
	Thursday     bool   `json:"trabalha_quinta"`
	Friday       bool   `json:"trabalha_sexta"`
	Saturday     bool   `json:"trabalha_sabado"`
	Sunday       bool   `json:"trabalha_domingo"`
}

func (r CreateGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "nome", Message: "is required"})
	}
	if r.DailyMinutes <= 0 || r.DailyMinutes > 24*60 {
		errs = append(errs, validator.ValidationError{Field: "carga_horaria_minutos", Message: "must be between 1 and 1440"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GroupResponse struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	DailyMinutes int    `json:"carga_horaria_minutos"`
	Monday       bool   `json:"trabalha_segunda"`
	Tuesday      bool   `json:"trabalha_terca"`
	Wednesday    bool   `json:"trabalha_quarta"`
	Thursday     bool   `json:"trabalha_quinta"`
	Friday       bool   `json:"trabalha_sexta"`
	Saturday     bool   `json:"trabalha_sabado"`
	Sunday       bool   `json:"trabalha_domingo"`
}
