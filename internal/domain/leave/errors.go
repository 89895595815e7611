package leave

import "errors"

// Leave domain errors
var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrAlreadyProcessed     = errors.New("leave request has already been processed")
	ErrNotRequestOwner      = errors.New("leave request belongs to another employee")
)
