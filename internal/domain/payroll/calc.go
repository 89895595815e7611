package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/c4sfood/payroll-backend-go/internal/domain/attendance"
	"github.com/c4sfood/payroll-backend-go/internal/domain/leave"
)

// NominalWorkdayHours divides the daily rate into an hourly rate for the
// late penalty.
const NominalWorkdayHours = 8

type DeductionPolicy string

const (
	// PolicyPerEmployee sums the three amounts configured on the
	// employee row.
	PolicyPerEmployee DeductionPolicy = "per_employee"
	// PolicyFlat applies one fixed total regardless of the employee's
	// configured amounts.
	PolicyFlat DeductionPolicy = "flat"
)

// Compensation is the employee's pay configuration as the engine sees
// it; the engine never reads the employee row itself.
type Compensation struct {
	DailyRate  decimal.Decimal
	SSS        decimal.Decimal
	Philhealth decimal.Decimal
	Pagibig    decimal.Decimal
}

// Inputs carries everything one computation needs. The engine is pure:
// explicit arguments in, a Computation out, no shared state touched.
type Inputs struct {
	Comp               Compensation
	Policy             DeductionPolicy
	FlatDeductionTotal decimal.Decimal
	Period             Period
	Attendance         []attendance.Attendance
	ApprovedLeave      []leave.LeaveRequest

	// ExtraLateMinutes is the operator's manual late correction, added
	// on top of the minutes aggregated from attendance.
	ExtraLateMinutes int
}

type Computation struct {
	Period          Period
	AttendanceDays  int
	LeaveDays       int
	PayableDays     int
	WorkedHours     decimal.Decimal
	LateMinutes     int
	GrossPay        decimal.Decimal
	SSS             decimal.Decimal
	Philhealth      decimal.Decimal
	Pagibig         decimal.Decimal
	LateDeduction   decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Warnings        []string
}

const (
	WarningZeroAttendance = "no payable days in this period; gross pay will be 0.00"
	WarningNegativeNet    = "deductions exceed gross pay; net pay floored to 0.00"
)

// CountPayableDays aggregates the period's payable days: attendance
// days plus approved-leave days, where a day covered by both counts
// once, capped at the period's working-day ceiling.
func CountPayableDays(p Period, atts []attendance.Attendance, leaves []leave.LeaveRequest) (attendanceDays, leaveDays, payableDays int) {
	attended := make(map[string]struct{})
	for _, a := range atts {
		if !p.Contains(a.Date) {
			continue
		}
		key := DateOnly(a.Date).Format("2006-01-02")
		if _, ok := attended[key]; ok {
			continue
		}
		attended[key] = struct{}{}
		attendanceDays++
	}

	onLeave := make(map[string]struct{})
	for _, l := range leaves {
		if l.Status != leave.StatusApproved {
			continue
		}
		// Clamp the leave range to the period window before counting.
		from := DateOnly(l.StartDate)
		if from.Before(p.Start) {
			from = p.Start
		}
		to := DateOnly(l.EndDate)
		if to.After(p.End) {
			to = p.End
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			key := d.Format("2006-01-02")
			if _, ok := attended[key]; ok {
				continue
			}
			if _, ok := onLeave[key]; ok {
				continue
			}
			onLeave[key] = struct{}{}
			leaveDays++
		}
	}

	payableDays = attendanceDays + leaveDays
	if max := p.MaxWorkingDays(); payableDays > max {
		payableDays = max
	}
	return attendanceDays, leaveDays, payableDays
}

// SumLateMinutes totals late minutes over the period's attendance.
func SumLateMinutes(p Period, atts []attendance.Attendance) int {
	total := 0
	for _, a := range atts {
		if p.Contains(a.Date) {
			total += a.LateMinutes
		}
	}
	return total
}

func sumWorkedHours(p Period, atts []attendance.Attendance) decimal.Decimal {
	total := decimal.Zero
	for _, a := range atts {
		if p.Contains(a.Date) {
			total = total.Add(a.WorkedHours)
		}
	}
	return total
}

// Compute derives one payslip computation for the period.
//
//	gross      = payable days x daily rate
//	hourly     = daily rate / 8
//	late ded.  = (late minutes / 60) x hourly
//	statutory  = per-employee sum or flat total, per policy
//	net        = max(0, gross - statutory - late deduction)
//
// A zero-attendance period is producible, not an error: amounts collapse
// to zero and a warning asks the operator to confirm. A negative net is
// floored to zero with a warning; the result stays writable.
func Compute(in Inputs) Computation {
	attendanceDays, leaveDays, payableDays := CountPayableDays(in.Period, in.Attendance, in.ApprovedLeave)
	lateMinutes := SumLateMinutes(in.Period, in.Attendance) + in.ExtraLateMinutes

	c := Computation{
		Period:         in.Period,
		AttendanceDays: attendanceDays,
		LeaveDays:      leaveDays,
		PayableDays:    payableDays,
		WorkedHours:    sumWorkedHours(in.Period, in.Attendance).Round(2),
		LateMinutes:    lateMinutes,
	}

	if payableDays == 0 {
		c.GrossPay = decimal.Zero.Round(2)
		c.SSS = decimal.Zero
		c.Philhealth = decimal.Zero
		c.Pagibig = decimal.Zero
		c.LateDeduction = decimal.Zero
		c.TotalDeductions = decimal.Zero
		c.NetPay = decimal.Zero.Round(2)
		c.Warnings = append(c.Warnings, WarningZeroAttendance)
		return c
	}

	gross := in.Comp.DailyRate.Mul(decimal.NewFromInt(int64(payableDays)))

	hourlyRate := in.Comp.DailyRate.Div(decimal.NewFromInt(NominalWorkdayHours))
	lateDeduction := decimal.NewFromInt(int64(lateMinutes)).
		Div(decimal.NewFromInt(60)).
		Mul(hourlyRate)

	var statutory decimal.Decimal
	switch in.Policy {
	case PolicyFlat:
		statutory = in.FlatDeductionTotal
		c.SSS = decimal.Zero
		c.Philhealth = decimal.Zero
		c.Pagibig = decimal.Zero
	default:
		c.SSS = in.Comp.SSS
		c.Philhealth = in.Comp.Philhealth
		c.Pagibig = in.Comp.Pagibig
		statutory = in.Comp.SSS.Add(in.Comp.Philhealth).Add(in.Comp.Pagibig)
	}

	totalDeductions := statutory.Add(lateDeduction)
	net := gross.Sub(totalDeductions)
	if net.IsNegative() {
		c.Warnings = append(c.Warnings, WarningNegativeNet)
		net = decimal.Zero
	}

	c.GrossPay = gross.Round(2)
	c.LateDeduction = lateDeduction.Round(2)
	c.TotalDeductions = totalDeductions.Round(2)
	c.NetPay = net.Round(2)
	return c
}
