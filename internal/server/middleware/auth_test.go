package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/tripmap/pkg/logging"
)

func TestAuth(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		token  string
		path   string
		setup  func(*http.Request)
		status int
	}{
		{"disabled", "", "/api/ratings", func(*http.Request) {}, http.StatusOK},
		{"missing token", "t0k", "/api/ratings", func(*http.Request) {}, http.StatusUnauthorized},
		{"wrong token", "t0k", "/api/ratings", func(r *http.Request) { r.Header.Set("X-API-Key", "nope") }, http.StatusUnauthorized},
		{"header", "t0k", "/api/ratings", func(r *http.Request) { r.Header.Set("X-API-Key", "t0k") }, http.StatusOK},
		{"bearer", "t0k", "/api/ratings", func(r *http.Request) { r.Header.Set("Authorization", "Bearer t0k") }, http.StatusOK},
		{"raw authorization", "t0k", "/api/ratings", func(r *http.Request) { r.Header.Set("Authorization", "t0k") }, http.StatusUnauthorized},
		{"query", "t0k", "/api/ratings?api_key=t0k", func(*http.Request) {}, http.StatusOK},
		{"public path", "t0k", "/health", func(*http.Request) {}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logging.NewTestLogger(t)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			Auth(DefaultAuthConfig(tt.token), tl.Logger)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
				assert.True(t, tl.Contains("Authentication failed"))
			}
		})
	}
}
