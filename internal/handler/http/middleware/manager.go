package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftnote/shiftnote-backend-go/internal/domain/auth"
	"github.com/shiftnote/shiftnote-backend-go/internal/domain/user"
	"github.com/shiftnote/shiftnote-backend-go/internal/handler/http/response"
)

// ManagerOnly guards the staff roster dashboard.
func ManagerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleManager) {
			response.HandleError(w, user.ErrManagerPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
