package company

import (
	"time"
)

// Company holds the punch location settings: punches inside
// AllowedRadiusMeters of the office coordinates are flagged valid.
type Company struct {
	ID                  string
	Name                string
	CNPJ                string
	OfficeLatitude      *float64
	OfficeLongitude     *float64
	AllowedRadiusMeters int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
