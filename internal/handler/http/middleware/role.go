package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/wetrack-hr/attendance-backend-go/internal/domain/employee"
	"github.com/wetrack-hr/attendance-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasRole(r, employee.RoleAdmin) {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// EmployeeOnly requires the employee role; admins use the reporting surface
// instead of clocking themselves.
func EmployeeOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !hasRole(r, employee.RoleEmployee) {
			response.Forbidden(w, "Employee access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func hasRole(r *http.Request, role employee.Role) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return false
	}

	return employee.Role(roleStr) == role
}
