package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type ListFilter struct {
	EmployeeID string
	StartDate  string
	EndDate    string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != "" && !validator.IsValidEmployeeCode(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee id must be a 4-digit code",
		})
	}

	var start, end time.Time
	if f.StartDate != "" {
		var ok bool
		if start, ok = validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start date must be YYYY-MM-DD",
			})
		}
	}
	if f.EndDate != "" {
		var ok bool
		if end, ok = validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end date must be YYYY-MM-DD",
			})
		}
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end date must not be before start date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName *string         `json:"employee_name,omitempty"`
	EmployeeRole *string         `json:"employee_role,omitempty"`
	Date         string          `json:"date"`
	TimeIn       time.Time       `json:"time_in"`
	TimeOut      *time.Time      `json:"time_out,omitempty"`
	WorkedHours  decimal.Decimal `json:"worked_hours"`
	PayableHours decimal.Decimal `json:"payable_hours"`
	LateMinutes  int             `json:"late_minutes"`
	Status       string          `json:"status"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		EmployeeRole: a.EmployeeRole,
		Date:         a.Date.Format("2006-01-02"),
		TimeIn:       a.TimeIn,
		TimeOut:      a.TimeOut,
		WorkedHours:  a.WorkedHours,
		PayableHours: a.PayableHours,
		LateMinutes:  a.LateMinutes,
		Status:       a.Status,
	}
}
