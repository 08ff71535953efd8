package middleware

import (
	"net/http"

	"github.com/tasteplaces/tasteplaces/internal/config"
)

// APIKeyAuth middleware validates the API key from the "api_key" header.
// With no keys configured every request is let through.
func APIKeyAuth(cfg config.AuthConfig) func(next http.Handler) http.Handler {
	valid := make(map[string]struct{}, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		valid[key] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		if len(valid) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get("api_key")

			if apiKey == "" {
				http.Error(w, "Unauthorized: API key required", http.StatusUnauthorized)
				return
			}

			if _, ok := valid[apiKey]; !ok {
				http.Error(w, "Forbidden: Invalid API key", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
