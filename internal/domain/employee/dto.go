package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE DTOs
// ========================================

type CreateEmployeeRequest struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Username   string           `json:"username"`
	Password   string           `json:"password"`
	Role       string           `json:"role"`
	DailyRate  *decimal.Decimal `json:"daily_rate"`
	SSS        *decimal.Decimal `json:"sss_deduction"`
	Philhealth *decimal.Decimal `json:"philhealth_deduction"`
	Pagibig    *decimal.Decimal `json:"pagibig_deduction"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, . _ -)",
		})
	}

	if len(r.Password) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 4 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	errs = append(errs, validateCompensation(r.DailyRate, r.SSS, r.Philhealth, r.Pagibig)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string           `json:"-"`
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Role       *string          `json:"role"`
	DailyRate  *decimal.Decimal `json:"daily_rate"`
	SSS        *decimal.Decimal `json:"sss_deduction"`
	Philhealth *decimal.Decimal `json:"philhealth_deduction"`
	Pagibig    *decimal.Decimal `json:"pagibig_deduction"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "employee id must be a 4-digit code",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		})
	}

	errs = append(errs, validateCompensation(r.DailyRate, r.SSS, r.Philhealth, r.Pagibig)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// validateCompensation enforces the compensation invariants: daily rate
// is never negative and each statutory deduction stays inside its
// configured bound.
func validateCompensation(dailyRate, sss, philhealth, pagibig *decimal.Decimal) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if dailyRate != nil && dailyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_rate",
			Message: "daily rate must not be negative",
		})
	}

	deductions := map[string]*decimal.Decimal{
		"sss_deduction":        sss,
		"philhealth_deduction": philhealth,
		"pagibig_deduction":    pagibig,
	}
	for field, amount := range deductions {
		if amount == nil {
			continue
		}
		if amount.IsNegative() || amount.GreaterThan(MaxDeduction) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "deduction must be between 0 and " + MaxDeduction.String(),
			})
		}
	}

	return errs
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	Role       string          `json:"role"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	SSS        decimal.Decimal `json:"sss_deduction"`
	Philhealth decimal.Decimal `json:"philhealth_deduction"`
	Pagibig    decimal.Decimal `json:"pagibig_deduction"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

type ArchivedEmployeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Username   string          `json:"username"`
	Role       string          `json:"role"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	ArchivedAt time.Time       `json:"archived_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Username:   e.Username,
		Role:       e.Role,
		DailyRate:  e.DailyRate,
		SSS:        e.SSS,
		Philhealth: e.Philhealth,
		Pagibig:    e.Pagibig,
		Status:     string(e.Status),
		CreatedAt:  e.CreatedAt,
	}
}
