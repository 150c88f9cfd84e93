package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		configuredKey  string
		providedKey    string
		expectedStatus int
	}{
		{"valid key", "secret-key", "secret-key", http.StatusOK},
		{"wrong key", "secret-key", "wrong-key", http.StatusUnauthorized},
		{"missing key", "secret-key", "", http.StatusUnauthorized},
		{"no key configured", "", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewSuspiciousActivityDetector()
			handler := AuthMiddleware(tt.configuredKey, nil, detector)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RecordsFailures(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := AuthMiddleware("secret-key", nil, detector)(okHandler())

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	_, failed := detector.counts("10.0.0.9")
	assert.Equal(t, 3, failed)
}
