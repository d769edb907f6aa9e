package punch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
)

func TestProjectNext_EmptyDayStartsWithEntrada(t *testing.T) {
	step := ProjectNext(nil)

	assert.Equal(t, string(punch.KindEntrada), step.Action)
	assert.Equal(t, "Registrar Entrada", step.Label)
}

func TestProjectNext_FollowsTheDayStateMachine(t *testing.T) {
	cases := []struct {
		last   punch.Kind
		action string
		label  string
	}{
		{punch.KindEntrada, string(punch.KindSaidaAlmoco), "Sair para o Almoço"},
		{punch.KindSaidaAlmoco, string(punch.KindVoltaAlmoco), "Voltar do Almoço"},
		{punch.KindVoltaAlmoco, string(punch.KindSaida), "Encerrar Expediente"},
		{punch.KindSaida, ActionFimDoDia, "Expediente Finalizado"},
	}

	for _, tc := range cases {
		step := ProjectNext(&punch.Punch{Kind: tc.last})
		assert.Equal(t, tc.action, step.Action, "after %s", tc.last)
		assert.Equal(t, tc.label, step.Label, "after %s", tc.last)
	}
}
