package payroll

import (
	"context"
	"time"
)

type PayslipRepository interface {
	// GetByEmployeeAndPeriodStart returns the stored payslip for the
	// (employee, period start) pair, or ErrPayslipNotFound.
	GetByEmployeeAndPeriodStart(ctx context.Context, employeeID string, periodStart time.Time) (Payslip, error)

	// Upsert is the engine's sole write path, keyed on (employee_id,
	// period_start). The write is conditional at the store: an existing
	// Approved row is left untouched and ErrPayslipApproved is returned,
	// closing the read-then-write race window.
	Upsert(ctx context.Context, p Payslip) (Payslip, error)

	// GetByID returns one payslip row.
	GetByID(ctx context.Context, id string) (Payslip, error)

	// UpdateStatus is the admin approve/reject action, orthogonal to
	// Upsert.
	UpdateStatus(ctx context.Context, id string, status Status) (Payslip, error)

	// List returns payslips for report views, newest period first.
	List(ctx context.Context, filter ListFilter) ([]Payslip, error)
}

type SettingsRepository interface {
	// Get returns the single settings row, or ErrSettingsNotFound before
	// first save.
	Get(ctx context.Context) (Settings, error)

	// Upsert saves the single settings row.
	Upsert(ctx context.Context, s Settings) (Settings, error)
}
