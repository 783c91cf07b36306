package middleware

import (
	"crypto/subtle"
	"net/http"
	"roulette_backend/pkg/resp"
	"strings"
)

// AdminToken пропускает запрос только с заголовком Authorization: Bearer <token>.
// Пустой token отключает проверку
func AdminToken(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				resp.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
