package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKey int

const requestIDKey ctxKey = 1

// заголовки, в которых голосовая платформа передаёт id звонка
var callIDHeaders = []string{"X-Request-ID", "X-Call-ID"}

// RequestID связывает все вызовы инструментов одного звонка общим id.
// Без заголовка (или с мусором в нём) генерируется uuid.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := callID(r)
			if rid == "" {
				rid = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", rid)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, rid)))
		})
	}
}

func callID(r *http.Request) string {
	for _, h := range callIDHeaders {
		v := strings.TrimSpace(r.Header.Get(h))
		if v != "" && len(v) <= 128 && printableASCII(v) {
			return v
		}
	}
	return ""
}

func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func GetRequestID(r *http.Request) string {
	rid, _ := r.Context().Value(requestIDKey).(string)
	return rid
}
