package attendance

import (
	"context"
	"time"
)

// AttendanceService defines business logic for time punches
type AttendanceService interface {
	// TimeIn records the first punch of the day. Re-punching returns the
	// stored record unchanged (first in, last out).
	TimeIn(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)

	// TimeOut closes (or re-closes) today's record, computing worked and
	// payable hours.
	TimeOut(ctx context.Context, employeeID string, now time.Time) (AttendanceResponse, error)

	// CancelTimeIn deletes today's record; allowed only for the record
	// owner and only before clock-out.
	CancelTimeIn(ctx context.Context, employeeID string, now time.Time) error

	// Today returns today's record for an employee, if any.
	Today(ctx context.Context, employeeID string, now time.Time) (*AttendanceResponse, error)

	// List returns attendance for admin views.
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)

	// CloseOpenSessions clock-outs records left open past the cutoff;
	// run by the scheduler.
	CloseOpenSessions(ctx context.Context, now time.Time) (int, error)
}
