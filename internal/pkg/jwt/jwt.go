package jwt

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	defaultAccessTTL  = time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

type Service interface {
	GenerateAccessToken(employeeID string, name string, isAdmin bool) (token string, expiresAt int64, err error)
	GenerateRefreshToken(employeeID string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type service struct {
	auth       *jwtauth.JWTAuth
	accessTTL  time.Duration
	refreshTTL time.Duration

	mu      sync.RWMutex
	revoked map[string]int64 // token -> expiry unix, pruned on revoke
}

// NewJWTService builds the token service. TTLs are duration strings
// ("1h", "168h"); an unparsable value falls back to the default.
func NewJWTService(secretKey string, accessTTL string, refreshTTL string) Service {
	return &service{
		auth:       jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		accessTTL:  parseTTL(accessTTL, defaultAccessTTL),
		refreshTTL: parseTTL(refreshTTL, defaultRefreshTTL),
		revoked:    make(map[string]int64),
	}
}

func parseTTL(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("invalid token ttl, using default", "value", value, "default", fallback)
		return fallback
	}
	return d
}

func (s *service) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}

func (s *service) GenerateAccessToken(employeeID string, name string, isAdmin bool) (string, int64, error) {
	expiresAt := time.Now().Add(s.accessTTL).Unix()
	_, token, err := s.auth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"name":        name,
		"is_admin":    isAdmin,
		"type":        TypeAccess,
		"exp":         expiresAt,
	})
	return token, expiresAt, err
}

func (s *service) GenerateRefreshToken(employeeID string) (string, int64, error) {
	expiresAt := time.Now().Add(s.refreshTTL).Unix()
	_, token, err := s.auth.Encode(map[string]interface{}{
		"employee_id": employeeID,
		"type":        TypeRefresh,
		"exp":         expiresAt,
	})
	return token, expiresAt, err
}

// RefreshTokenCookie scopes the refresh token to the auth endpoints so
// it never rides along on API calls.
func (s *service) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func (s *service) RevokeToken(token string) {
	now := time.Now()
	expiry := now.Add(s.refreshTTL).Unix()

	s.mu.Lock()
	defer s.mu.Unlock()
	for t, exp := range s.revoked {
		if exp < now.Unix() {
			delete(s.revoked, t)
		}
	}
	s.revoked[token] = expiry
}

func (s *service) IsTokenRevoked(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[token]
	return ok
}
