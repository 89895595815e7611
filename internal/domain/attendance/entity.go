package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Attendance is one row per (employee, calendar date); that uniqueness
// is enforced by the storage upsert key.
type Attendance struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	TimeIn       time.Time
	TimeOut      *time.Time
	WorkedHours  decimal.Decimal
	PayableHours decimal.Decimal
	LateMinutes  int
	Status       string
	CreatedAt    time.Time

	// Joined for list views
	EmployeeName *string
	EmployeeRole *string
}

const (
	StatusPresent = "present"
	StatusClosed  = "closed"
)

// Workday rules carried over from the shop-floor schedule: an 08:00
// start with a 10 minute grace window, a 12:00-13:00 unpaid lunch break
// and at most 8 payable hours per day.
const (
	ScheduledStartHour    = 8
	GraceMinutes          = 10
	LunchStartHour        = 12
	LunchEndHour          = 13
	MaxPayableHoursPerDay = 8
)
