package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUsername(ctx context.Context, username string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee, passwordHash string) (Employee, error)

	// SetAccrualStartDate marks the date from which the running balance is
	// accumulated; days before it are excluded from any report.
	SetAccrualStartDate(ctx context.Context, id string, start time.Time) error
}
