package payroll

import (
	"context"
)

// PayrollService defines the payroll engine's operations
type PayrollService interface {
	// Preview computes the payslip for (employee, period) without
	// writing anything; warnings tell the operator what confirm will do.
	Preview(ctx context.Context, req RunPayrollRequest) (PreviewResponse, error)

	// Confirm recomputes from the latest stored attendance and leave,
	// re-checks the approval lock against fresh state and upserts the
	// payslip keyed on (employee id, period start).
	Confirm(ctx context.Context, req RunPayrollRequest) (PayslipResponse, error)

	// Periods lists the selectable period windows ending at the current
	// one, most recent first.
	Periods(ctx context.Context, periodType string, count int) ([]PeriodOption, error)

	// ListPayslips returns stored payslips; consumers read them as-is,
	// never recompute.
	ListPayslips(ctx context.Context, filter ListFilter) ([]PayslipResponse, error)

	// GetPayslip returns one stored payslip.
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)

	// SetStatus is the admin approve/reject action.
	SetStatus(ctx context.Context, id string, status string) (PayslipResponse, error)

	// GetSettings / UpdateSettings manage the deduction-policy
	// configuration.
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
