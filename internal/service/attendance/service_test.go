package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c4sfood/payroll-backend-go/internal/domain/attendance"
	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
)

const testEmployeeID = "7777"

type memAttendanceRepo struct {
	records map[string]attendance.Attendance
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (m *memAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	rec, ok := m.records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := recordKey(att.EmployeeID, att.Date)
	if existing, ok := m.records[key]; ok {
		return existing, nil
	}
	m.records[key] = att
	return att, nil
}

func (m *memAttendanceRepo) UpdateClockOut(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := recordKey(att.EmployeeID, att.Date)
	if _, ok := m.records[key]; !ok {
		return attendance.Attendance{}, attendance.ErrRecordNotFound
	}
	m.records[key] = att
	return att, nil
}

func (m *memAttendanceRepo) Delete(ctx context.Context, id string) error {
	for key, rec := range m.records {
		if rec.ID == id {
			delete(m.records, key)
			return nil
		}
	}
	return attendance.ErrRecordNotFound
}

func (m *memAttendanceRepo) ListByEmployeeInRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range m.records {
		if rec.EmployeeID == employeeID && !rec.Date.Before(startDate) && !rec.Date.After(endDate) {
			result = append(result, rec)
		}
	}
	return result, nil
}

func (m *memAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range m.records {
		result = append(result, rec)
	}
	return result, nil
}

func (m *memAttendanceRepo) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range m.records {
		if rec.TimeOut == nil && rec.Date.Before(cutoff) {
			result = append(result, rec)
		}
	}
	return result, nil
}

type stubEmployeeRepo struct{}

func (stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if id != testEmployeeID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, Status: employee.StatusActive}, nil
}

func (stubEmployeeRepo) GetByEmailOrUsername(ctx context.Context, identifier string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (stubEmployeeRepo) List(ctx context.Context, status employee.Status) ([]employee.Employee, error) {
	return nil, nil
}

func (stubEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (stubEmployeeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (stubEmployeeRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (stubEmployeeRepo) ListIDs(ctx context.Context) ([]string, error) {
	return []string{testEmployeeID}, nil
}

func (stubEmployeeRepo) SetStatus(ctx context.Context, id string, status employee.Status) error {
	return nil
}

func newTestService() (attendance.AttendanceService, *memAttendanceRepo) {
	repo := newMemAttendanceRepo()
	return NewAttendanceService(repo, stubEmployeeRepo{}), repo
}

func at(hour, min int) time.Time {
	return time.Date(2026, time.August, 26, hour, min, 0, 0, time.UTC)
}

func TestTimeInOnTime(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.TimeIn(ctx, testEmployeeID, at(7, 55))
	require.NoError(t, err)

	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, attendance.StatusPresent, rec.Status)
}

func TestTimeInWithinGrace(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.TimeIn(ctx, testEmployeeID, at(8, 10))
	require.NoError(t, err)

	assert.Equal(t, 0, rec.LateMinutes)
}

func TestTimeInPastGraceCountsFromScheduledStart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// 08:25 is 15 minutes past the grace window but 25 minutes past the
	// scheduled start; the full 25 count.
	rec, err := svc.TimeIn(ctx, testEmployeeID, at(8, 25))
	require.NoError(t, err)

	assert.Equal(t, 25, rec.LateMinutes)
}

func TestTimeInTwiceKeepsFirstPunch(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.TimeIn(ctx, testEmployeeID, at(8, 0))
	require.NoError(t, err)

	second, err := svc.TimeIn(ctx, testEmployeeID, at(9, 30))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TimeIn, second.TimeIn)
	assert.Equal(t, 0, second.LateMinutes)
}

func TestTimeInUnknownEmployee(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, "0000", at(8, 0))
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestTimeOutSubtractsLunch(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, testEmployeeID, at(8, 0))
	require.NoError(t, err)

	// 08:00 to 17:00 spans 9 hours; the 12:00-13:00 break leaves 8.
	rec, err := svc.TimeOut(ctx, testEmployeeID, at(17, 0))
	require.NoError(t, err)

	assert.Equal(t, "8.00", rec.WorkedHours.StringFixed(2))
	assert.Equal(t, "8.00", rec.PayableHours.StringFixed(2))
	assert.Equal(t, attendance.StatusClosed, rec.Status)
	require.NotNil(t, rec.TimeOut)
}

func TestTimeOutPartialLunchOverlap(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, testEmployeeID, at(12, 30))
	require.NoError(t, err)

	// 12:30 to 15:30 overlaps the break by 30 minutes.
	rec, err := svc.TimeOut(ctx, testEmployeeID, at(15, 30))
	require.NoError(t, err)

	assert.Equal(t, "2.50", rec.WorkedHours.StringFixed(2))
}

func TestTimeOutCapsPayableHours(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, testEmployeeID, at(7, 0))
	require.NoError(t, err)

	// 07:00 to 19:00 minus lunch works out to 11 hours; only 8 pay.
	rec, err := svc.TimeOut(ctx, testEmployeeID, at(19, 0))
	require.NoError(t, err)

	assert.Equal(t, "11.00", rec.WorkedHours.StringFixed(2))
	assert.Equal(t, "8.00", rec.PayableHours.StringFixed(2))
}

func TestTimeOutWithoutTimeIn(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.TimeOut(ctx, testEmployeeID, at(17, 0))
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestTimeOutTwiceLastOutWins(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, testEmployeeID, at(8, 0))
	require.NoError(t, err)

	_, err = svc.TimeOut(ctx, testEmployeeID, at(16, 0))
	require.NoError(t, err)

	rec, err := svc.TimeOut(ctx, testEmployeeID, at(17, 0))
	require.NoError(t, err)

	assert.Equal(t, "8.00", rec.WorkedHours.StringFixed(2))
}

func TestCancelTimeIn(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, testEmployeeID, at(8, 0))
	require.NoError(t, err)

	require.NoError(t, svc.CancelTimeIn(ctx, testEmployeeID, at(8, 5)))
	assert.Empty(t, repo.records)
}

func TestCancelTimeInAfterTimeOut(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.TimeIn(ctx, testEmployeeID, at(8, 0))
	require.NoError(t, err)
	_, err = svc.TimeOut(ctx, testEmployeeID, at(17, 0))
	require.NoError(t, err)

	err = svc.CancelTimeIn(ctx, testEmployeeID, at(17, 30))
	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestCancelTimeInWithoutRecord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	err := svc.CancelTimeIn(ctx, testEmployeeID, at(9, 0))
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestTodayNilWhenNoRecord(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	rec, err := svc.Today(ctx, testEmployeeID, at(9, 0))
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestCloseOpenSessions(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Yesterday's punch was never closed.
	yesterday := at(8, 0).AddDate(0, 0, -1)
	_, err := svc.TimeIn(ctx, testEmployeeID, yesterday)
	require.NoError(t, err)

	closed, err := svc.CloseOpenSessions(ctx, at(1, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	rec := repo.records[recordKey(testEmployeeID, dateOnly(yesterday))]
	require.NotNil(t, rec.TimeOut)
	assert.Equal(t, attendance.StatusClosed, rec.Status)
	assert.Equal(t, "8.00", rec.WorkedHours.StringFixed(2))

	// Today's open session is left alone.
	_, err = svc.TimeIn(ctx, testEmployeeID, at(8, 0))
	require.NoError(t, err)
	closed, err = svc.CloseOpenSessions(ctx, at(9, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestWorkedHoursNeverNegative(t *testing.T) {
	worked, payable := workedHours(at(17, 0), at(8, 0))
	assert.True(t, worked.Equal(decimal.Zero))
	assert.True(t, payable.Equal(decimal.Zero))
}
