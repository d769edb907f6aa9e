package punch

import "errors"

// Punch domain errors
var (
	ErrInvalidKind    = errors.New("invalid punch kind")
	ErrDuplicatePunch = errors.New("a punch already exists at this timestamp")
	ErrPunchNotFound  = errors.New("punch not found")
)
