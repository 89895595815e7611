package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWeeklyMidweek(t *testing.T) {
	// Wednesday 2026-08-26 sits in the week of Monday the 24th.
	p := ResolveWeekly(date(2026, time.August, 26), 0)

	assert.Equal(t, date(2026, time.August, 24), p.Start)
	assert.Equal(t, date(2026, time.August, 30), p.End)
	assert.Equal(t, time.Monday, p.Start.Weekday())
	assert.Equal(t, time.Sunday, p.End.Weekday())
}

func TestResolveWeeklySundayAnchorsBackwards(t *testing.T) {
	// Sunday belongs to the week that started six days earlier, not the
	// week beginning the next day.
	p := ResolveWeekly(date(2026, time.August, 30), 0)

	assert.Equal(t, date(2026, time.August, 24), p.Start)
	assert.Equal(t, date(2026, time.August, 30), p.End)
}

func TestResolveWeeklyMonday(t *testing.T) {
	p := ResolveWeekly(date(2026, time.August, 24), 0)

	assert.Equal(t, date(2026, time.August, 24), p.Start)
}

func TestResolveWeeklyOffset(t *testing.T) {
	p := ResolveWeekly(date(2026, time.August, 26), -1)

	assert.Equal(t, date(2026, time.August, 17), p.Start)
	assert.Equal(t, date(2026, time.August, 23), p.End)
}

func TestResolveWeeklyIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2026, time.August, 26, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, time.August, 26, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, ResolveWeekly(early, 0).Start, ResolveWeekly(late, 0).Start)
}

func TestResolveMonthly(t *testing.T) {
	p := ResolveMonthly(date(2026, time.February, 15), 0)

	assert.Equal(t, date(2026, time.February, 1), p.Start)
	assert.Equal(t, date(2026, time.February, 28), p.End)
}

func TestResolveMonthlyOffsetAcrossYear(t *testing.T) {
	p := ResolveMonthly(date(2026, time.January, 10), -1)

	assert.Equal(t, date(2025, time.December, 1), p.Start)
	assert.Equal(t, date(2025, time.December, 31), p.End)
}

func TestPeriodFromStartWeekly(t *testing.T) {
	p, err := PeriodFromStart(PeriodWeekly, date(2026, time.August, 24))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.August, 30), p.End)

	_, err = PeriodFromStart(PeriodWeekly, date(2026, time.August, 25))
	assert.Error(t, err)
}

func TestPeriodFromStartMonthly(t *testing.T) {
	p, err := PeriodFromStart(PeriodMonthly, date(2026, time.April, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2026, time.April, 30), p.End)

	_, err = PeriodFromStart(PeriodMonthly, date(2026, time.April, 2))
	assert.Error(t, err)
}

func TestPeriodFromStartUnknownType(t *testing.T) {
	_, err := PeriodFromStart(PeriodType("fortnightly"), date(2026, time.August, 24))
	assert.Error(t, err)
}

func TestPeriodContains(t *testing.T) {
	p, err := PeriodFromStart(PeriodWeekly, date(2026, time.August, 24))
	require.NoError(t, err)

	assert.True(t, p.Contains(date(2026, time.August, 24)))
	assert.True(t, p.Contains(date(2026, time.August, 30)))
	assert.True(t, p.Contains(time.Date(2026, time.August, 30, 23, 59, 0, 0, time.UTC)))
	assert.False(t, p.Contains(date(2026, time.August, 23)))
	assert.False(t, p.Contains(date(2026, time.August, 31)))
}

func TestMaxWorkingDays(t *testing.T) {
	weekly := ResolveWeekly(date(2026, time.August, 26), 0)
	assert.Equal(t, 6, weekly.MaxWorkingDays())

	// August 2026 has 31 days, 5 of them Sundays.
	monthly := ResolveMonthly(date(2026, time.August, 15), 0)
	assert.Equal(t, 26, monthly.MaxWorkingDays())

	// February 2026 has 28 days, 4 Sundays.
	feb := ResolveMonthly(date(2026, time.February, 10), 0)
	assert.Equal(t, 24, feb.MaxWorkingDays())
}
