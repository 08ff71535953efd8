package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tasteplaces/tasteplaces/internal/config"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})
}

func TestAPIKeyAuth(t *testing.T) {
	cfg := config.AuthConfig{
		APIKeys: []string{"apitest", "testkey123"},
	}

	authHandler := APIKeyAuth(cfg)(okHandler())

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "valid API key - apitest",
			apiKey:         "apitest",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid API key - testkey123",
			apiKey:         "testkey123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing API key",
			apiKey:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid API key",
			apiKey:         "wrongkey",
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
			if tt.apiKey != "" {
				req.Header.Set("api_key", tt.apiKey)
			}

			w := httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedStatus == http.StatusOK {
				if w.Body.String() != "success" {
					t.Errorf("body = %s, want success", w.Body.String())
				}
			}
		})
	}
}

func TestAPIKeyAuth_NoKeysConfigured(t *testing.T) {
	handler := APIKeyAuth(config.AuthConfig{})(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/api/session", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}
