package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/c4sfood/payroll-backend-go/internal/domain/auth"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/response"
	"github.com/c4sfood/payroll-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token. Refresh
// tokens are not accepted here even though they verify.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != jwt.TypeAccess {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// EmployeeID extracts the authenticated employee's code from the token
// claims; empty when unauthenticated.
func EmployeeID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["employee_id"].(string)
	return id
}

// IsAdmin reports whether the authenticated caller carries the admin
// claim.
func IsAdmin(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	admin, _ := claims["is_admin"].(bool)
	return admin
}
