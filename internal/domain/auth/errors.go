package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials   = errors.New("invalid email/username or password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token expired")
	ErrRefreshTokenRevoked  = errors.New("refresh token revoked")
	ErrAdminPrivilegeNeeded = errors.New("admin privilege required")
	ErrEmployeeArchived     = errors.New("employee account is archived")
)
