package middleware

import (
	"net/http"

	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

// CORS filters cross-origin requests against an allow-list. Requests without
// an Origin header (same-origin, curl) pass through untouched. Requests with
// an Origin not on the list are rejected with 403 before any handler runs.
func CORS(allowedOrigins []string, logger *zap.Logger) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := allowed[origin]; !ok {
				logger.Warn("Blocked request from disallowed origin",
					zap.String("origin", origin),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method))
				utils.ResponseForbidden(w, "Origin not allowed")
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
