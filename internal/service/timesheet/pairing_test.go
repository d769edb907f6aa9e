package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
)

func punchAt(t *testing.T, clock string, kind punch.Kind) punch.Punch {
	t.Helper()
	at, err := time.Parse("2006-01-02 15:04", "2025-11-03 "+clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	return punch.Punch{PunchedAt: at, Kind: kind}
}

func TestWorkedMinutes_FullDayWithLunch(t *testing.T) {
	punches := []punch.Punch{
		punchAt(t, "08:00", punch.KindEntrada),
		punchAt(t, "12:00", punch.KindSaidaAlmoco),
		punchAt(t, "13:00", punch.KindVoltaAlmoco),
		punchAt(t, "17:00", punch.KindSaida),
	}

	for _, mode := range []PairingMode{PairingLenient, PairingStrict} {
		worked, consistent := WorkedMinutes(punches, mode)
		assert.Equal(t, 480, worked, "mode %s", mode)
		assert.True(t, consistent, "mode %s", mode)
	}
}

func TestWorkedMinutes_OddTrailingPunchIgnored(t *testing.T) {
	punches := []punch.Punch{
		punchAt(t, "08:00", punch.KindEntrada),
		punchAt(t, "12:00", punch.KindSaidaAlmoco),
		punchAt(t, "13:00", punch.KindVoltaAlmoco),
	}

	worked, consistent := WorkedMinutes(punches, PairingLenient)
	assert.Equal(t, 240, worked)
	assert.True(t, consistent)

	worked, consistent = WorkedMinutes(punches, PairingStrict)
	assert.Equal(t, 240, worked)
	assert.True(t, consistent)
}

func TestWorkedMinutes_EmptyDay(t *testing.T) {
	worked, consistent := WorkedMinutes(nil, PairingLenient)
	assert.Zero(t, worked)
	assert.True(t, consistent)
}

func TestWorkedMinutes_LenientIgnoresKinds(t *testing.T) {
	// Two SAIDA punches in a row still pair by position.
	punches := []punch.Punch{
		punchAt(t, "09:00", punch.KindSaida),
		punchAt(t, "10:30", punch.KindSaida),
	}

	worked, consistent := WorkedMinutes(punches, PairingLenient)
	assert.Equal(t, 90, worked)
	assert.True(t, consistent)
}

func TestWorkedMinutes_StrictFlagsMalformedSequence(t *testing.T) {
	punches := []punch.Punch{
		punchAt(t, "08:00", punch.KindEntrada),
		punchAt(t, "09:00", punch.KindVoltaAlmoco),
		punchAt(t, "17:00", punch.KindSaida),
	}

	worked, consistent := WorkedMinutes(punches, PairingStrict)
	assert.Equal(t, 480, worked)
	assert.False(t, consistent)
}

func TestWorkedMinutes_StrictOrphanCloseFlagged(t *testing.T) {
	punches := []punch.Punch{
		punchAt(t, "12:00", punch.KindSaida),
	}

	worked, consistent := WorkedMinutes(punches, PairingStrict)
	assert.Zero(t, worked)
	assert.False(t, consistent)
}

func TestWorkedMinutes_NegativeDeltaClampedToZero(t *testing.T) {
	punches := []punch.Punch{
		punchAt(t, "17:00", punch.KindEntrada),
		punchAt(t, "08:00", punch.KindSaida),
	}

	worked, _ := WorkedMinutes(punches, PairingLenient)
	assert.Zero(t, worked)
}
