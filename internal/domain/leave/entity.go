package leave

import "time"

// LeaveRequest covers the inclusive [StartDate, EndDate] range.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	LeaveType    string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	AdminComment *string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for list views
	EmployeeName *string
	EmployeeRole *string
}

type Status string

// Pending is the only state with outgoing transitions: the admin moves a
// request to Approved or Rejected, the employee to Cancelled.
const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

var LeaveTypes = []string{"Vacation", "Sick", "Emergency", "Unpaid"}
