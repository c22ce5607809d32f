package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// LimitBytes ограничивает размер тела запроса; n <= 0, без лимита.
func LimitBytes(n int64) func(http.Handler) http.Handler {
	if n <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return chimw.RequestSize(n)
}
