package timesheet

import (
	"time"

	"github.com/pontoflow/ponto-backend-go/internal/domain/punch"
)

// PairingMode selects how a day's punches are paired into worked
// intervals.
type PairingMode string

const (
	// PairingLenient pairs punches purely by position: (0,1), (2,3), ...
	// regardless of kind. This reproduces the historical behavior.
	PairingLenient PairingMode = "lenient"

	// PairingStrict pairs by kind: ENTRADA/VOLTA_ALMOCO open an interval,
	// SAIDA_ALMOCO/SAIDA close it. Malformed transitions are skipped and
	// the day is reported inconsistent.
	PairingStrict PairingMode = "strict"
)

// WorkedMinutes totals the worked time of one day's punches, which must be
// in ascending timestamp order. Returns whole minutes and whether the
// sequence was consistent (always true in lenient mode). Negative deltas
// from clock skew are clamped to zero in both modes.
func WorkedMinutes(punches []punch.Punch, mode PairingMode) (int, bool) {
	if mode == PairingStrict {
		return workedMinutesByKind(punches)
	}
	return workedMinutesByPosition(punches), true
}

func workedMinutesByPosition(punches []punch.Punch) int {
	var total time.Duration
	for i := 0; i+1 < len(punches); i += 2 {
		d := punches[i+1].PunchedAt.Sub(punches[i].PunchedAt)
		if d < 0 {
			d = 0
		}
		total += d
	}
	// An unpaired trailing punch contributes nothing.
	return int(total.Minutes())
}

func workedMinutesByKind(punches []punch.Punch) (int, bool) {
	var total time.Duration
	var open *time.Time
	consistent := true

	for _, p := range punches {
		switch {
		case p.Kind.Opens():
			if open != nil {
				consistent = false
			}
			t := p.PunchedAt
			open = &t
		case p.Kind.Closes():
			if open == nil {
				consistent = false
				continue
			}
			d := p.PunchedAt.Sub(*open)
			if d < 0 {
				d = 0
			}
			total += d
			open = nil
		}
	}
	// An interval still open counts nothing; only closed intervals do.
	return int(total.Minutes()), consistent
}
