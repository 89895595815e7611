package attendance

import "errors"

// Attendance domain errors
var (
	ErrNotClockedIn      = errors.New("no time in record for today")
	ErrAlreadyClockedOut = errors.New("cannot cancel - already timed out")
	ErrRecordNotFound    = errors.New("attendance record not found")
	ErrNotRecordOwner    = errors.New("attendance record belongs to another employee")
)
