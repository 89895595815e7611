package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayslipNotFound = errors.New("payslip not found")

	// ErrPayslipApproved guards the approval lock: an approved payslip
	// cannot be overwritten; reject it first, then recompute.
	ErrPayslipApproved = errors.New("payslip is already approved; reject it before running payroll again")

	// ErrZeroAttendanceUnconfirmed is returned when a zero-payable-day
	// payslip would be written without the operator's explicit go-ahead.
	ErrZeroAttendanceUnconfirmed = errors.New("no payable days in this period; confirm zero-attendance payroll to proceed")

	ErrSettingsNotFound = errors.New("payroll settings not found")
)
