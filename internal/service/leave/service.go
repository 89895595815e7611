package leave

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/domain/leave"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		ID:         uuid.New().String(),
		EmployeeID: req.EmployeeID,
		LeaveType:  req.LeaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	slog.Info("leave request filed",
		"leave_id", created.ID,
		"employee_id", created.EmployeeID,
		"type", created.LeaveType,
	)

	return leave.ToResponse(created), nil
}

// decide moves a Pending request to the target status. Any other
// starting state is rejected so decisions are final.
func (s *LeaveServiceImpl) decide(ctx context.Context, req leave.DecideLeaveRequest, target leave.Status) (leave.LeaveResponse, error) {
	current, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if current.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, req.ID, target, req.AdminComment)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("leave request decided", "leave_id", updated.ID, "status", updated.Status)

	return leave.ToResponse(updated), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, req, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, req leave.DecideLeaveRequest) (leave.LeaveResponse, error) {
	return s.decide(ctx, req, leave.StatusRejected)
}

// Cancel implements leave.LeaveService.
func (s *LeaveServiceImpl) Cancel(ctx context.Context, id string, employeeID string) (leave.LeaveResponse, error) {
	current, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if current.EmployeeID != employeeID {
		return leave.LeaveResponse{}, leave.ErrNotRequestOwner
	}
	if current.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyProcessed
	}

	updated, err := s.leaveRepo.UpdateStatus(ctx, id, leave.StatusCancelled, nil)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	result := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		result = append(result, leave.ToResponse(req))
	}

	return result, nil
}
