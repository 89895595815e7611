package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/c4sfood/payroll-backend-go/internal/domain/auth"
	"github.com/c4sfood/payroll-backend-go/internal/domain/employee"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

func isAdminRole(role string) bool {
	return strings.EqualFold(role, "admin")
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	emp, err := a.employeeRepo.GetByEmailOrUsername(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to look up employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Name, isAdminRole(emp.Role))
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to create access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := a.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to create refresh token: %w", err)
	}

	slog.Info("employee logged in", "employee_id", emp.ID)

	resp := auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
		EmployeeID:  emp.ID,
		Name:        emp.Name,
		Role:        emp.Role,
		IsAdmin:     isAdminRole(emp.Role),
	}

	return resp, refreshToken, refreshExpiresAt, nil
}

// Refresh implements auth.AuthService. The employee row is re-read so a
// token minted before an archive stops working at the next refresh.
func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.RefreshResponse, error) {
	if a.jwtService.IsTokenRevoked(refreshToken) {
		return auth.RefreshResponse{}, auth.ErrRefreshTokenRevoked
	}

	token, err := jwtauth.VerifyToken(a.jwtService.JWTAuth(), refreshToken)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return auth.RefreshResponse{}, auth.ErrTokenExpired
		}
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	if tokenType, _ := claims["type"].(string); tokenType != jwt.TypeRefresh {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}
	employeeID, _ := claims["employee_id"].(string)
	if employeeID == "" {
		return auth.RefreshResponse{}, auth.ErrInvalidToken
	}

	emp, err := a.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.RefreshResponse{}, auth.ErrInvalidToken
		}
		return auth.RefreshResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}
	if emp.Status == employee.StatusArchived {
		return auth.RefreshResponse{}, auth.ErrEmployeeArchived
	}

	accessToken, expiresAt, err := a.jwtService.GenerateAccessToken(emp.ID, emp.Name, isAdminRole(emp.Role))
	if err != nil {
		return auth.RefreshResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.RefreshResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	a.jwtService.RevokeToken(refreshToken)
	return nil
}
