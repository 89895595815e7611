package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrUsernameExists     = errors.New("username already taken")
	ErrAlreadyArchived    = errors.New("employee is already archived")
	ErrNotArchived        = errors.New("employee is not archived")
	ErrCodeSpaceExhausted = errors.New("no free employee code available")
)
