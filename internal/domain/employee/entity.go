package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	Username     string
	PasswordHash string
	Role         string
	DailyRate    decimal.Decimal
	SSS          decimal.Decimal
	Philhealth   decimal.Decimal
	Pagibig      decimal.Decimal
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ArchivedEmployee is the snapshot taken when an employee is archived.
// It lives independently of the live row, whose status flips to
// archived; attendance and payslip history is left untouched.
type ArchivedEmployee struct {
	ID         string
	Name       string
	Email      string
	Username   string
	Role       string
	DailyRate  decimal.Decimal
	ArchivedAt time.Time
}

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Compensation defaults applied at registration when no explicit values
// are supplied.
var (
	DefaultDailyRate  = decimal.NewFromInt(510)
	DefaultSSS        = decimal.NewFromInt(300)
	DefaultPhilhealth = decimal.NewFromInt(250)
	DefaultPagibig    = decimal.NewFromInt(200)

	// MaxDeduction bounds each statutory deduction amount.
	MaxDeduction = decimal.NewFromInt(10000)
)
