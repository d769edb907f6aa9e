package punch

import (
	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
)

// ActionFimDoDia is the terminal pseudo-action after the closing SAIDA.
const ActionFimDoDia = "FIM_DO_DIA"

// NextStep is the projected next punch and its button label.
type NextStep struct {
	Action string
	Label  string
}

// ProjectNext runs the day state machine over the last punch of the day.
// A nil last punch means the day has not started.
func ProjectNext(last *punch.Punch) NextStep {
	if last == nil {
		return NextStep{Action: string(punch.KindEntrada), Label: "Registrar Entrada"}
	}
	switch last.Kind {
	case punch.KindEntrada:
		return NextStep{Action: string(punch.KindSaidaAlmoco), Label: "Sair para o Almoço"}
	case punch.KindSaidaAlmoco:
		return NextStep{Action: string(punch.KindVoltaAlmoco), Label: "Voltar do Almoço"}
	case punch.KindVoltaAlmoco:
		return NextStep{Action: string(punch.KindSaida), Label: "Encerrar Expediente"}
	default:
		return NextStep{Action: ActionFimDoDia, Label: "Expediente Finalizado"}
	}
}
