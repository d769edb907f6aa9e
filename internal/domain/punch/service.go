package punch

import (
	"context"
)

// PunchService defines business logic for punch registration and the
// current-status projection.
type PunchService interface {
	// Register stamps and stores a new punch for the authenticated employee.
	// The location check is evaluated and recorded but never rejects.
	Register(ctx context.Context, req RegisterPunchRequest) (PunchResponse, error)

	// Status returns today's punch history, the next expected punch kind and
	// the elapsed worked time so far.
	Status(ctx context.Context) (StatusResponse, error)
}
