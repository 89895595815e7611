package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

// ========================================
// PAYROLL DTOs
// ========================================

// MaxManualLateMinutes bounds the operator's late correction; a week
// has 3360 schedulable minutes, anything beyond that is a typo.
const MaxManualLateMinutes = 4000

// RunPayrollRequest drives both the preview and the confirm step for
// one (employee, period) pair.
type RunPayrollRequest struct {
	EmployeeID  string `json:"employee_id"`
	PeriodType  string `json:"period_type"`
	PeriodStart string `json:"period_start"`

	// ExtraLateMinutes is the manual late correction added to the
	// aggregated total.
	ExtraLateMinutes int `json:"extra_late_minutes"`

	// ConfirmZeroAttendance must be set to persist a payslip for a
	// period with no payable days.
	ConfirmZeroAttendance bool `json:"confirm_zero_attendance"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee id must be a 4-digit code",
		})
	}

	periodType := PeriodType(r.PeriodType)
	if periodType != PeriodWeekly && periodType != PeriodMonthly {
		errs = append(errs, validator.ValidationError{
			Field:   "period_type",
			Message: "period type must be weekly or monthly",
		})
	}

	start, ok := validator.IsValidDate(r.PeriodStart)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "period_start",
			Message: "period start must be YYYY-MM-DD",
		})
	} else if periodType == PeriodWeekly || periodType == PeriodMonthly {
		if _, err := PeriodFromStart(periodType, start); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "period_start",
				Message: err.Error(),
			})
		}
	}

	if r.ExtraLateMinutes < 0 || r.ExtraLateMinutes > MaxManualLateMinutes {
		errs = append(errs, validator.ValidationError{
			Field:   "extra_late_minutes",
			Message: "late minutes must be between 0 and 4000",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayslipResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    *string         `json:"employee_name,omitempty"`
	EmployeeRole    *string         `json:"employee_role,omitempty"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	PeriodType      string          `json:"period_type"`
	PayableDays     int             `json:"payable_days"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	SSS             decimal.Decimal `json:"sss"`
	Philhealth      decimal.Decimal `json:"philhealth"`
	Pagibig         decimal.Decimal `json:"pagibig"`
	LateDeduction   decimal.Decimal `json:"late_deduction"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	WorkedHours     decimal.Decimal `json:"worked_hours"`
	LateMinutes     int             `json:"late_minutes"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// PreviewResponse is the computed payslip before the confirm step, plus
// the operator warnings the UI must surface.
type PreviewResponse struct {
	EmployeeID      string          `json:"employee_id"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	PeriodType      string          `json:"period_type"`
	AttendanceDays  int             `json:"attendance_days"`
	LeaveDays       int             `json:"leave_days"`
	PayableDays     int             `json:"payable_days"`
	WorkedHours     decimal.Decimal `json:"worked_hours"`
	LateMinutes     int             `json:"late_minutes"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	LateDeduction   decimal.Decimal `json:"late_deduction"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetPay          decimal.Decimal `json:"net_pay"`
	Warnings        []string        `json:"warnings,omitempty"`
	ExistingStatus  *string         `json:"existing_status,omitempty"`
}

type ListFilter struct {
	EmployeeID  string
	Status      string
	PeriodStart string
}

// PeriodOption is one selectable entry in the period picker.
type PeriodOption struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Label   string `json:"label"`
	Current bool   `json:"current"`
}

type UpdateSettingsRequest struct {
	DeductionPolicy    *string          `json:"deduction_policy"`
	FlatDeductionTotal *decimal.Decimal `json:"flat_deduction_total"`
	DefaultPeriodType  *string          `json:"default_period_type"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.DeductionPolicy != nil {
		p := DeductionPolicy(*r.DeductionPolicy)
		if p != PolicyPerEmployee && p != PolicyFlat {
			errs = append(errs, validator.ValidationError{
				Field:   "deduction_policy",
				Message: "deduction policy must be per_employee or flat",
			})
		}
	}

	if r.FlatDeductionTotal != nil && r.FlatDeductionTotal.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "flat_deduction_total",
			Message: "flat deduction total must not be negative",
		})
	}

	if r.DefaultPeriodType != nil {
		t := PeriodType(*r.DefaultPeriodType)
		if t != PeriodWeekly && t != PeriodMonthly {
			errs = append(errs, validator.ValidationError{
				Field:   "default_period_type",
				Message: "default period type must be weekly or monthly",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	DeductionPolicy    string          `json:"deduction_policy"`
	FlatDeductionTotal decimal.Decimal `json:"flat_deduction_total"`
	DefaultPeriodType  string          `json:"default_period_type"`
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    p.EmployeeName,
		EmployeeRole:    p.EmployeeRole,
		PeriodStart:     p.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       p.PeriodEnd.Format("2006-01-02"),
		PeriodType:      string(p.PeriodType),
		PayableDays:     p.PayableDays,
		GrossPay:        p.GrossPay,
		SSS:             p.SSS,
		Philhealth:      p.Philhealth,
		Pagibig:         p.Pagibig,
		LateDeduction:   p.LateDeduction,
		TotalDeductions: p.TotalDeductions,
		NetPay:          p.NetPay,
		WorkedHours:     p.WorkedHours,
		LateMinutes:     p.LateMinutes,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
	}
}
