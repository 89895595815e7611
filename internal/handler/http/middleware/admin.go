package middleware

import (
	"net/http"

	"github.com/c4sfood/payroll-backend-go/internal/domain/auth"
	"github.com/c4sfood/payroll-backend-go/internal/handler/http/response"
)

// AdminOnly guards admin routes. It runs behind AuthRequired, so the
// token is already verified; only the claim matters here.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r) {
			response.HandleError(w, auth.ErrAdminPrivilegeNeeded)
			return
		}
		next.ServeHTTP(w, r)
	})
}
