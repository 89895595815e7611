package auth

import (
	"github.com/c4sfood/payroll-backend-go/internal/pkg/validator"
)

// ========================================
// AUTH DTOs
// ========================================

type LoginRequest struct {
	// Identifier is an email address or a username.
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Identifier) {
		errs = append(errs, validator.ValidationError{
			Field:   "identifier",
			Message: "email or username is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	IsAdmin     bool   `json:"is_admin"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
