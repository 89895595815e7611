package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/domain/leave"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

const testEmployeeID = "5555"

type memLeaveRepo struct {
	requests map[string]leave.LeaveRequest
}

func newMemLeaveRepo() *memLeaveRepo {
	return &memLeaveRepo{requests: make(map[string]leave.LeaveRequest)}
}

func (m *memLeaveRepo) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	m.requests[req.ID] = req
	return req, nil
}

func (m *memLeaveRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (m *memLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.Status, adminComment *string) (leave.LeaveRequest, error) {
	req, ok := m.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	req.Status = status
	if adminComment != nil {
		req.AdminComment = adminComment
	}
	m.requests[id] = req
	return req, nil
}

func (m *memLeaveRepo) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveRequest, error) {
	var result []leave.LeaveRequest
	for _, req := range m.requests {
		if filter.EmployeeID != "" && req.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != "" && string(req.Status) != filter.Status {
			continue
		}
		result = append(result, req)
	}
	return result, nil
}

func (m *memLeaveRepo) ListApprovedOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
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

func newTestService() (leave.LeaveService, *memLeaveRepo) {
	repo := newMemLeaveRepo()
	return NewLeaveService(repo, stubEmployeeRepo{}), repo
}

func validRequest() leave.CreateLeaveRequest {
	return leave.CreateLeaveRequest{
		EmployeeID: testEmployeeID,
		LeaveType:  "Vacation",
		StartDate:  "2026-09-07",
		EndDate:    "2026-09-09",
		Reason:     "family trip",
	}
}

func TestCreateLeaveRequest(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2026-09-07", resp.StartDate)
	assert.Equal(t, "2026-09-09", resp.EndDate)
	assert.Len(t, repo.requests, 1)
}

func TestCreateRejectsInvertedRange(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := validRequest()
	req.StartDate = "2026-09-09"
	req.EndDate = "2026-09-07"

	_, err := svc.Create(ctx, req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end_date", verrs[0].Field)
}

func TestCreateRejectsUnknownLeaveType(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := validRequest()
	req.LeaveType = "Sabbatical"

	_, err := svc.Create(ctx, req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "leave_type", verrs[0].Field)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := validRequest()
	req.EmployeeID = "0000"

	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestApprovePendingRequest(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	comment := "enjoy"
	resp, err := svc.Approve(ctx, leave.DecideLeaveRequest{ID: created.ID, AdminComment: &comment})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusApproved), resp.Status)
	require.NotNil(t, resp.AdminComment)
	assert.Equal(t, "enjoy", *resp.AdminComment)
}

func TestRejectPendingRequest(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	resp, err := svc.Reject(ctx, leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusRejected), resp.Status)
}

func TestDecisionsAreFinal(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Approve(ctx, leave.DecideLeaveRequest{ID: created.ID})
	require.NoError(t, err)

	_, err = svc.Reject(ctx, leave.DecideLeaveRequest{ID: created.ID})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)

	_, err = svc.Cancel(ctx, created.ID, testEmployeeID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestCancelOwnPendingRequest(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	resp, err := svc.Cancel(ctx, created.ID, testEmployeeID)
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusCancelled), resp.Status)
}

func TestCancelRequiresOwnership(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, created.ID, "9999")
	assert.ErrorIs(t, err, leave.ErrNotRequestOwner)
}

func TestDecideMissingRequest(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Approve(ctx, leave.DecideLeaveRequest{ID: "nope"})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}
