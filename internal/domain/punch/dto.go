package punch

import (
	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

type RegisterPunchRequest struct {
	Kind      string   `json:"tipo"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (r RegisterPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Kind) {
		errs = append(errs, validator.ValidationError{Field: "tipo", Message: "is required"})
	} else if !validator.IsInSlice(r.Kind, KindValues) {
		errs = append(errs, validator.ValidationError{Field: "tipo", Message: "must be one of ENTRADA, SAIDA_ALMOCO, VOLTA_ALMOCO, SAIDA"})
	}

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be between -90 and 90"})
	}
	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID             string   `json:"id"`
	PunchedAt      string   `json:"data_hora"`
	Kind           string   `json:"tipo"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	LocationValid  bool     `json:"localizacao_valida"`
	ManuallyEdited bool     `json:"editado_manualmente"`
}

// StatusResponse is the "current status" screen payload: today's punch
// history plus the projected next action.
type StatusResponse struct {
	History     []PunchResponse `json:"historico"`
	LastPunch   *PunchResponse  `json:"ultimo_registro"`
	NextAction  string          `json:"proxima_acao"`
	ButtonLabel string          `json:"texto_botao"`
	WorkedToday string          `json:"horas_trabalhadas"`
}
