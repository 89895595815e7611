package payroll

import (
	"fmt"
	"time"
)

type PeriodType string

const (
	PeriodWeekly  PeriodType = "weekly"
	PeriodMonthly PeriodType = "monthly"
)

// Period is a resolved pay window. Start and End are calendar dates at
// midnight in one fixed location; they are never compared as instants,
// so a punch near midnight or across a UTC offset cannot shift the
// boundary.
type Period struct {
	Type  PeriodType
	Start time.Time
	End   time.Time
}

// DateOnly strips the time of day, keeping the calendar date in the
// timestamp's own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolveWeekly returns the Monday-Sunday week containing the reference
// date, shifted by offsetWeeks whole weeks. A Sunday reference anchors
// to the Monday six days earlier, not the day after.
func ResolveWeekly(ref time.Time, offsetWeeks int) Period {
	day := int(ref.Weekday())
	diff := 1 - day
	if day == 0 {
		diff = -6
	}
	start := DateOnly(ref).AddDate(0, 0, diff+offsetWeeks*7)
	return Period{
		Type:  PeriodWeekly,
		Start: start,
		End:   start.AddDate(0, 0, 6),
	}
}

// ResolveMonthly returns the calendar month containing the reference
// date, shifted by offsetMonths. Day 0 of the following month yields the
// last day of the target month.
func ResolveMonthly(ref time.Time, offsetMonths int) Period {
	start := time.Date(ref.Year(), ref.Month()+time.Month(offsetMonths), 1, 0, 0, 0, 0, ref.Location())
	end := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, ref.Location())
	return Period{
		Type:  PeriodMonthly,
		Start: start,
		End:   end,
	}
}

// Resolve dispatches on the period type.
func Resolve(periodType PeriodType, ref time.Time, offset int) (Period, error) {
	switch periodType {
	case PeriodWeekly:
		return ResolveWeekly(ref, offset), nil
	case PeriodMonthly:
		return ResolveMonthly(ref, offset), nil
	default:
		return Period{}, fmt.Errorf("unknown period type %q", periodType)
	}
}

// PeriodFromStart reconstructs the window from a stored period start.
func PeriodFromStart(periodType PeriodType, start time.Time) (Period, error) {
	start = DateOnly(start)
	switch periodType {
	case PeriodWeekly:
		if start.Weekday() != time.Monday {
			return Period{}, fmt.Errorf("weekly period start %s is not a Monday", start.Format("2006-01-02"))
		}
		return Period{Type: PeriodWeekly, Start: start, End: start.AddDate(0, 0, 6)}, nil
	case PeriodMonthly:
		if start.Day() != 1 {
			return Period{}, fmt.Errorf("monthly period start %s is not the first of the month", start.Format("2006-01-02"))
		}
		end := time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, start.Location())
		return Period{Type: PeriodMonthly, Start: start, End: end}, nil
	default:
		return Period{}, fmt.Errorf("unknown period type %q", periodType)
	}
}

// Contains reports whether the calendar date of t falls inside the
// window.
func (p Period) Contains(t time.Time) bool {
	d := DateOnly(t)
	return !d.Before(p.Start) && !d.After(p.End)
}

// MaxWorkingDays is the period's working-day ceiling: 6 for any week,
// the Monday-Saturday count for a month. Sunday is categorically a
// non-working day.
func (p Period) MaxWorkingDays() int {
	if p.Type == PeriodWeekly {
		return 6
	}
	count := 0
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		if d.Weekday() != time.Sunday {
			count++
		}
	}
	return count
}
