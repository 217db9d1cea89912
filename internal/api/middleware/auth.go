package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/jvz16/SalonBookingService/internal/api/handlers"
)

const (
	// AdminTokenHeader заголовок с токеном админ-панели
	AdminTokenHeader = "X-Admin-Token"

	msgUnauthorized = "se requiere el token de administración"
)

// Auth middleware аутентификации админ-панели по статическому токену.
// Салон обслуживает одна владелица, полноценная система пользователей
// здесь не нужна.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)

			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
