package auth

import (
	"context"
)

// AuthService defines the login flow. The authorization model is
// deliberately binary: an account is either the admin or an employee.
type AuthService interface {
	// Login verifies credentials against the active employee roster and
	// issues access + refresh tokens.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, string, int64, error)

	// Refresh exchanges a valid refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error
}
