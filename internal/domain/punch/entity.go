package punch

import (
	"time"
)

// Kind is the type of a clock event ("batida").
type Kind string

const (
	KindEntrada     Kind = "ENTRADA"
	KindSaidaAlmoco Kind = "SAIDA_ALMOCO"
	KindVoltaAlmoco Kind = "VOLTA_ALMOCO"
	KindSaida       Kind = "SAIDA"
)

var KindValues = []string{
	string(KindEntrada),
	string(KindSaidaAlmoco),
	string(KindVoltaAlmoco),
	string(KindSaida),
}

// Opens reports whether this kind starts a working interval.
func (k Kind) Opens() bool {
	return k == KindEntrada || k == KindVoltaAlmoco
}

// Closes reports whether this kind ends a working interval.
func (k Kind) Closes() bool {
	return k == KindSaidaAlmoco || k == KindSaida
}

type Punch struct {
	ID             string
	EmployeeID     string
	PunchedAt      time.Time
	Kind           Kind
	Latitude       *float64
	Longitude      *float64
	LocationValid  bool
	ManuallyEdited bool
	Note           *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
