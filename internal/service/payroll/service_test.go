package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c4sfood/payroll-backend-go/internal/domain/attendance"
	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/domain/leave"
	"github.com/c4sfood/payroll-backend-go/internal/domain/payroll"
)

// ---- in-memory fakes ----

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmailOrUsername(ctx context.Context, identifier string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(ctx context.Context, status employee.Status) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) ListIDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(f.employees))
	for id := range f.employees {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeEmployeeRepo) SetStatus(ctx context.Context, id string, status employee.Status) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Status = status
	f.employees[id] = emp
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	f.records = append(f.records, att)
	return att, nil
}

func (f *fakeAttendanceRepo) UpdateClockOut(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	return att, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeAttendanceRepo) ListByEmployeeInRange(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]attendance.Attendance, error) {
	var result []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID != employeeID {
			continue
		}
		if rec.Date.Before(startDate) || rec.Date.After(endDate) {
			continue
		}
		result = append(result, rec)
	}
	return result, nil
}

func (f *fakeAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) ListOpenBefore(ctx context.Context, cutoff time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

type fakeLeaveRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	f.requests = append(f.requests, req)
	return req, nil
}

func (f *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	for _, req := range f.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, adminComment *string) (leave.LeaveRequest, error) {
	for i, req := range f.requests {
		if req.ID == id {
			f.requests[i].Status = status
			f.requests[i].AdminComment = adminComment
			return f.requests[i], nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	return f.requests, nil
}

func (f *fakeLeaveRepo) ListApprovedOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID != employeeID || req.Status != leave.StatusApproved {
			continue
		}
		if req.EndDate.Before(startDate) || req.StartDate.After(endDate) {
			continue
		}
		result = append(result, req)
	}
	return result, nil
}

// fakePayslipRepo mirrors the storage guard: an upsert against an
// Approved row is refused.
type fakePayslipRepo struct {
	payslips map[string]payroll.Payslip
}

func payslipKey(employeeID string, periodStart time.Time) string {
	return employeeID + "|" + periodStart.Format("2006-01-02")
}

func (f *fakePayslipRepo) GetByEmployeeAndPeriodStart(ctx context.Context, employeeID string, periodStart time.Time) (payroll.Payslip, error) {
	p, ok := f.payslips[payslipKey(employeeID, periodStart)]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return p, nil
}

func (f *fakePayslipRepo) Upsert(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	key := payslipKey(p.EmployeeID, p.PeriodStart)
	if existing, ok := f.payslips[key]; ok {
		if existing.Status == payroll.StatusApproved {
			return payroll.Payslip{}, payroll.ErrPayslipApproved
		}
		p.ID = existing.ID
	}
	f.payslips[key] = p
	return p, nil
}

func (f *fakePayslipRepo) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	for _, p := range f.payslips {
		if p.ID == id {
			return p, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (f *fakePayslipRepo) UpdateStatus(ctx context.Context, id string, status payroll.Status) (payroll.Payslip, error) {
	for key, p := range f.payslips {
		if p.ID == id {
			p.Status = status
			f.payslips[key] = p
			return p, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (f *fakePayslipRepo) List(ctx context.Context, filter payroll.ListFilter) ([]payroll.Payslip, error) {
	var result []payroll.Payslip
	for _, p := range f.payslips {
		result = append(result, p)
	}
	return result, nil
}

type fakeSettingsRepo struct {
	stored *payroll.Settings
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (payroll.Settings, error) {
	if f.stored == nil {
		return payroll.Settings{}, payroll.ErrSettingsNotFound
	}
	return *f.stored, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, s payroll.Settings) (payroll.Settings, error) {
	f.stored = &s
	return s, nil
}

// ---- fixtures ----

const testEmployeeID = "4321"

// Monday 2026-08-24 anchors the test week.
var testWeekStart = time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

type fixture struct {
	svc      payroll.PayrollService
	payslips *fakePayslipRepo
	att      *fakeAttendanceRepo
	leaves   *fakeLeaveRepo
	settings *fakeSettingsRepo
}

func newFixture() *fixture {
	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		testEmployeeID: {
			ID:         testEmployeeID,
			Name:       "Maria Santos",
			Role:       "Cook",
			DailyRate:  decimal.NewFromInt(510),
			SSS:        decimal.NewFromInt(300),
			Philhealth: decimal.NewFromInt(250),
			Pagibig:    decimal.NewFromInt(200),
			Status:     employee.StatusActive,
		},
	}}
	payslips := &fakePayslipRepo{payslips: make(map[string]payroll.Payslip)}
	att := &fakeAttendanceRepo{}
	leaves := &fakeLeaveRepo{}
	settings := &fakeSettingsRepo{}

	defaults := payroll.Settings{
		DeductionPolicy:    payroll.PolicyPerEmployee,
		FlatDeductionTotal: decimal.NewFromInt(750),
		DefaultPeriodType:  payroll.PeriodWeekly,
	}

	return &fixture{
		svc:      NewPayrollService(payslips, settings, employees, att, leaves, defaults),
		payslips: payslips,
		att:      att,
		leaves:   leaves,
		settings: settings,
	}
}

func (f *fixture) addAttendance(days int) {
	for i := 0; i < days; i++ {
		f.att.records = append(f.att.records, attendance.Attendance{
			EmployeeID:  testEmployeeID,
			Date:        testWeekStart.AddDate(0, 0, i),
			WorkedHours: decimal.NewFromInt(8),
			Status:      attendance.StatusClosed,
		})
	}
}

func weekRequest() payroll.RunPayrollRequest {
	return payroll.RunPayrollRequest{
		EmployeeID:  testEmployeeID,
		PeriodType:  "weekly",
		PeriodStart: testWeekStart.Format("2006-01-02"),
	}
}

// ---- tests ----

func TestConfirmWritesPendingPayslip(t *testing.T) {
	f := newFixture()
	f.addAttendance(6)
	ctx := context.Background()

	resp, err := f.svc.Confirm(ctx, weekRequest())
	require.NoError(t, err)

	assert.Equal(t, 6, resp.PayableDays)
	assert.Equal(t, "3060.00", resp.GrossPay.StringFixed(2))
	assert.Equal(t, "750.00", resp.TotalDeductions.StringFixed(2))
	assert.Equal(t, "2310.00", resp.NetPay.StringFixed(2))
	assert.Equal(t, string(payroll.StatusPending), resp.Status)
	assert.Len(t, f.payslips.payslips, 1)
}

func TestConfirmIsIdempotentPerPeriod(t *testing.T) {
	f := newFixture()
	f.addAttendance(3)
	ctx := context.Background()

	first, err := f.svc.Confirm(ctx, weekRequest())
	require.NoError(t, err)

	// A new attendance day lands, payroll reruns: still one row, same
	// identity, fresh amounts.
	f.addAttendance(4)
	second, err := f.svc.Confirm(ctx, weekRequest())
	require.NoError(t, err)

	assert.Len(t, f.payslips.payslips, 1)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4, second.PayableDays)
}

func TestConfirmRefusedWhileApproved(t *testing.T) {
	f := newFixture()
	f.addAttendance(6)
	ctx := context.Background()

	written, err := f.svc.Confirm(ctx, weekRequest())
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, written.ID, "Approved")
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, weekRequest())
	assert.ErrorIs(t, err, payroll.ErrPayslipApproved)
}

func TestConfirmAllowedAfterReject(t *testing.T) {
	f := newFixture()
	f.addAttendance(6)
	ctx := context.Background()

	written, err := f.svc.Confirm(ctx, weekRequest())
	require.NoError(t, err)

	_, err = f.svc.SetStatus(ctx, written.ID, "Approved")
	require.NoError(t, err)
	_, err = f.svc.SetStatus(ctx, written.ID, "Rejected")
	require.NoError(t, err)

	rerun, err := f.svc.Confirm(ctx, weekRequest())
	require.NoError(t, err)
	assert.Equal(t, string(payroll.StatusPending), rerun.Status)
}

func TestConfirmStoreLevelGuard(t *testing.T) {
	f := newFixture()
	f.addAttendance(6)
	ctx := context.Background()

	// Approval lands directly in storage, as if a concurrent admin won
	// the race after the service's status check.
	stored, err := f.payslips.Upsert(ctx, payroll.Payslip{
		ID:          "race",
		EmployeeID:  testEmployeeID,
		PeriodStart: testWeekStart,
		Status:      payroll.StatusApproved,
	})
	require.NoError(t, err)
	require.Equal(t, payroll.StatusApproved, stored.Status)

	_, err = f.payslips.Upsert(ctx, payroll.Payslip{
		ID:          "challenger",
		EmployeeID:  testEmployeeID,
		PeriodStart: testWeekStart,
		Status:      payroll.StatusPending,
	})
	assert.ErrorIs(t, err, payroll.ErrPayslipApproved)
}

func TestConfirmZeroAttendanceNeedsFlag(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.svc.Confirm(ctx, weekRequest())
	assert.ErrorIs(t, err, payroll.ErrZeroAttendanceUnconfirmed)
	assert.Empty(t, f.payslips.payslips)

	req := weekRequest()
	req.ConfirmZeroAttendance = true
	resp, err := f.svc.Confirm(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.PayableDays)
	assert.Equal(t, "0.00", resp.NetPay.StringFixed(2))
}

func TestPreviewDoesNotWrite(t *testing.T) {
	f := newFixture()
	f.addAttendance(2)
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, weekRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, preview.PayableDays)
	assert.Nil(t, preview.ExistingStatus)
	assert.Empty(t, f.payslips.payslips)
}

func TestPreviewReportsExistingStatus(t *testing.T) {
	f := newFixture()
	f.addAttendance(2)
	ctx := context.Background()

	_, err := f.svc.Confirm(ctx, weekRequest())
	require.NoError(t, err)

	preview, err := f.svc.Preview(ctx, weekRequest())
	require.NoError(t, err)

	require.NotNil(t, preview.ExistingStatus)
	assert.Equal(t, string(payroll.StatusPending), *preview.ExistingStatus)
}

func TestPreviewCountsApprovedLeave(t *testing.T) {
	f := newFixture()
	f.addAttendance(2)
	f.leaves.requests = append(f.leaves.requests, leave.LeaveRequest{
		ID:         "lv-1",
		EmployeeID: testEmployeeID,
		Status:     leave.StatusApproved,
		StartDate:  testWeekStart.AddDate(0, 0, 2),
		EndDate:    testWeekStart.AddDate(0, 0, 3),
	})
	ctx := context.Background()

	preview, err := f.svc.Preview(ctx, weekRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, preview.AttendanceDays)
	assert.Equal(t, 2, preview.LeaveDays)
	assert.Equal(t, 4, preview.PayableDays)
}

func TestConfirmUsesFlatPolicyFromSettings(t *testing.T) {
	f := newFixture()
	f.addAttendance(6)
	f.settings.stored = &payroll.Settings{
		DeductionPolicy:    payroll.PolicyFlat,
		FlatDeductionTotal: decimal.NewFromInt(500),
		DefaultPeriodType:  payroll.PeriodWeekly,
	}
	ctx := context.Background()

	resp, err := f.svc.Confirm(ctx, weekRequest())
	require.NoError(t, err)

	assert.Equal(t, "500.00", resp.TotalDeductions.StringFixed(2))
	assert.Equal(t, "2560.00", resp.NetPay.StringFixed(2))
}

func TestConfirmRejectsMisalignedPeriodStart(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	req := weekRequest()
	req.PeriodStart = testWeekStart.AddDate(0, 0, 1).Format("2006-01-02")

	_, err := f.svc.Confirm(ctx, req)
	assert.Error(t, err)
}

func TestSettingsRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// Defaults apply before anything is saved.
	settings, err := f.svc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "per_employee", settings.DeductionPolicy)

	policy := "flat"
	total := decimal.NewFromInt(600)
	updated, err := f.svc.UpdateSettings(ctx, payroll.UpdateSettingsRequest{
		DeductionPolicy:    &policy,
		FlatDeductionTotal: &total,
	})
	require.NoError(t, err)
	assert.Equal(t, "flat", updated.DeductionPolicy)
	assert.Equal(t, "600", updated.FlatDeductionTotal.String())

	// The period type not supplied keeps its previous value.
	assert.Equal(t, "weekly", updated.DefaultPeriodType)
}
