package employee

import "errors"

var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrUsernameExists    = errors.New("username already exists")
	ErrEmailExists       = errors.New("email already registered in this company")
	ErrUnauthorized      = errors.New("unauthorized to access this employee")
	ErrNoCompanyAssigned = errors.New("employee has no company assigned")
)
