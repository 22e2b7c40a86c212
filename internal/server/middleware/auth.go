package middleware

import (
	"crypto/subtle"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/tripmap/internal/server/response"
)

// AuthConfig holds token authentication configuration. Clients present the
// token as a bearer token, in HeaderName, or in the QueryParam parameter.
type AuthConfig struct {
	Token       string
	HeaderName  string
	QueryParam  string
	PublicPaths []string
}

// DefaultAuthConfig returns an AuthConfig for token. Health checks stay public.
func DefaultAuthConfig(token string) AuthConfig {
	return AuthConfig{
		Token:       token,
		HeaderName:  "X-API-Key",
		QueryParam:  "api_key",
		PublicPaths: []string{"/health"},
	}
}

// Auth rejects requests that do not carry the configured token.
// An empty token disables the check.
func Auth(config AuthConfig, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if config.Token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions || slices.Contains(config.PublicPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			presented := extractToken(r, config)
			if subtle.ConstantTimeCompare([]byte(presented), []byte(config.Token)) != 1 {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("remote_addr", r.RemoteAddr).
					Bool("token_provided", presented != "").
					Msg("Authentication failed")
				response.Unauthorized(w, "Invalid or missing token",
					"Send the token as a bearer token or in the "+config.HeaderName+" header")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractToken finds the token wherever the client's authenticator put it.
func extractToken(r *http.Request, config AuthConfig) string {
	if config.HeaderName != "" {
		if v := r.Header.Get(config.HeaderName); v != "" {
			return v
		}
	}
	if v, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return v
	}
	if config.QueryParam != "" {
		return r.URL.Query().Get(config.QueryParam)
	}
	return ""
}
