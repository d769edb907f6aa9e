package timesheet

import (
	"github.com/pontoflow/ponto-backend-go/internal/pkg/validator"
)

// DayTag classifies a report row.
type DayTag string

const (
	TagNormal      DayTag = "NORMAL"
	TagFeriado     DayTag = "FERIADO"
	TagRecesso     DayTag = "RECESSO"
	TagFalta       DayTag = "FALTA"
	TagFolga       DayTag = "FOLGA"
	TagEmAndamento DayTag = "EM_ANDAMENTO"
)

type ReportFilter struct {
	StartDate string
	EndDate   string
}

func (f ReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportRow is one day of the interactive banco-de-horas report.
// DayBalance is "±HH:MM", or "Em andamento" for today's unresolved day.
type ReportRow struct {
	DateLabel  string `json:"data"`
	Worked     string `json:"horas_trabalhadas"`
	DayBalance string `json:"saldo_dia"`
	Tag        string `json:"classificacao"`
	Label      string `json:"descricao,omitempty"`
}

type ReportResponse struct {
	TotalBalance string      `json:"saldo_banco_horas"`
	Rows         []ReportRow `json:"historico"`
}

// ExportRow is one day of the print/export variant: every calendar day in
// the window appears, including plain days off and explicit FALTA markers.
type ExportRow struct {
	Date       string `json:"data"`
	Weekday    string `json:"dia_semana"`
	Worked     string `json:"horas_trabalhadas"`
	Expected   string `json:"horas_previstas"`
	DayBalance string `json:"saldo_dia"`
	Tag        string `json:"classificacao"`
	Label      string `json:"descricao,omitempty"`
}

// ExportPage groups export rows the way the print layer paginates them.
type ExportPage struct {
	Number int         `json:"pagina"`
	Rows   []ExportRow `json:"linhas"`
}

type ExportResponse struct {
	EmployeeName string       `json:"funcionario"`
	StartDate    string       `json:"data_inicio"`
	EndDate      string       `json:"data_fim"`
	TotalBalance string       `json:"saldo_banco_horas"`
	Pages        []ExportPage `json:"paginas"`
}
