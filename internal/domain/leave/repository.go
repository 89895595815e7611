package leave

import (
	"context"
	"time"
)

type LeaveRequestRepository interface {
	// Create inserts a new request in Pending state.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves one request.
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// UpdateStatus transitions a request and stores the optional admin
	// comment.
	UpdateStatus(ctx context.Context, id string, status Status, adminComment *string) (LeaveRequest, error)

	// List returns requests for admin or employee views, newest first.
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)

	// ListApprovedOverlapping returns approved requests whose
	// [start_date, end_date] range intersects [startDate, endDate]; the
	// payroll engine's leave slice.
	ListApprovedOverlapping(ctx context.Context, employeeID string, startDate, endDate time.Time) ([]LeaveRequest, error)
}
