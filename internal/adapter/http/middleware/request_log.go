package middleware

import (
	"net/http"

	"github.com/api-sage/currency-converter/internal/logger"
)

// RequestLog emits one diagnostic line per incoming request, API and static
// alike, before the handler runs.
func RequestLog() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Info("http request", logger.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			next.ServeHTTP(w, r)
		})
	}
}
