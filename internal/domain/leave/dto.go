package leave

import (
	"time"

	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

// ========================================
// LEAVE DTOs
// ========================================

type CreateLeaveRequest struct {
	EmployeeID string `json:"-"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave type must be one of Vacation, Sick, Emergency, Unpaid",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start date must be YYYY-MM-DD",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must be YYYY-MM-DD",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must not be before start date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	ID           string  `json:"-"`
	AdminComment *string `json:"admin_comment"`
}

type ListFilter struct {
	EmployeeID string
	Status     string
}

type LeaveResponse struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	EmployeeName *string   `json:"employee_name,omitempty"`
	EmployeeRole *string   `json:"employee_role,omitempty"`
	LeaveType    string    `json:"leave_type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	AdminComment *string   `json:"admin_comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		EmployeeRole: l.EmployeeRole,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		Reason:       l.Reason,
		Status:       string(l.Status),
		AdminComment: l.AdminComment,
		CreatedAt:    l.CreatedAt,
	}
}
