package response

import (
	"errors"
	"net/http"

	"github.com/c4sfood/payroll-backend-go/internal/domain/attendance"
	"github.com/c4sfood/payroll-backend-go/internal/domain/auth"
	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/domain/leave"
	"github.com/c4sfood/payroll-backend-go/internal/domain/payroll"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAdminPrivilegeNeeded):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrEmployeeArchived):
		Forbidden(w, "Employee account is archived")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already taken")
	case errors.Is(err, employee.ErrAlreadyArchived):
		Conflict(w, "Employee is already archived")
	case errors.Is(err, employee.ErrNotArchived):
		Conflict(w, "Employee is not archived")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No time in record for today", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Cannot cancel - already timed out")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNotRecordOwner):
		Forbidden(w, "Attendance record belongs to another employee")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotRequestOwner):
		Forbidden(w, "Leave request belongs to another employee")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPayslipApproved):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrZeroAttendanceUnconfirmed):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
