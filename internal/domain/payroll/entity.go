package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payslip's composite identity is (EmployeeID, PeriodStart); storage
// enforces at most one row per pair. Once Status is Approved the row is
// immutable until an explicit reject.
type Payslip struct {
	ID              string
	EmployeeID      string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	PeriodType      PeriodType
	PayableDays     int
	GrossPay        decimal.Decimal
	SSS             decimal.Decimal
	Philhealth      decimal.Decimal
	Pagibig         decimal.Decimal
	LateDeduction   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	WorkedHours     decimal.Decimal
	LateMinutes     int
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for list views
	EmployeeName *string
	EmployeeRole *string
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Settings is the single-row payroll policy configuration: which
// statutory deduction variant applies and the default period type.
type Settings struct {
	DeductionPolicy    DeductionPolicy
	FlatDeductionTotal decimal.Decimal
	DefaultPeriodType  PeriodType
	UpdatedAt          time.Time
}
