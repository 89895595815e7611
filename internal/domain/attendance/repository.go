package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByEmployeeAndDate returns the day's record, or nil when the
	// employee has not clocked in.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// Upsert inserts the first clock-in of the day, keyed on
	// (employee_id, date). A conflicting insert leaves the stored
	// first-in untouched and returns the existing row.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// UpdateClockOut writes the clock-out fields only; repeated
	// clock-outs overwrite (last out wins).
	UpdateClockOut(ctx context.Context, att Attendance) (Attendance, error)

	// Delete removes a record; used for cancelling a mistaken clock-in.
	Delete(ctx context.Context, id string) error

	// ListByEmployeeInRange returns records with date inside
	// [startDate, endDate], the payroll engine's attendance slice.
	ListByEmployeeInRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]Attendance, error)

	// List returns records for admin views, optionally filtered.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// ListOpenBefore returns records still lacking a clock-out whose
	// date is before the cutoff; consumed by the auto-close job.
	ListOpenBefore(ctx context.Context, cutoff time.Time) ([]Attendance, error)
}
