package leave

import (
	"context"
)

// LeaveService defines business logic for the leave workflow
type LeaveService interface {
	// Create files a new request in Pending state.
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)

	// Approve / Reject are admin decisions on Pending requests; Reject
	// stores the admin comment.
	Approve(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)
	Reject(ctx context.Context, req DecideLeaveRequest) (LeaveResponse, error)

	// Cancel is the employee's own withdrawal of a Pending request.
	Cancel(ctx context.Context, id string, employeeID string) (LeaveResponse, error)

	// List returns requests, optionally filtered by employee and status.
	List(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
}
