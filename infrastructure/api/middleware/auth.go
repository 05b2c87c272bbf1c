package middleware

import (
	"crypto/subtle"
	"net/http"
)

// AuthConfig holds the API keys accepted by write protection. An empty key
// set disables authentication.
type AuthConfig struct {
	keys []string
}

// NewAuthConfigWithKeys creates an AuthConfig accepting the given keys.
func NewAuthConfigWithKeys(keys []string) AuthConfig {
	return AuthConfig{keys: keys}
}

// Enabled reports whether any API keys are configured.
func (c AuthConfig) Enabled() bool {
	return len(c.keys) > 0
}

// Valid reports whether the presented key matches a configured key.
func (c AuthConfig) Valid(key string) bool {
	for _, k := range c.keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			return true
		}
	}
	return false
}

// WriteProtect returns middleware requiring a valid X-API-KEY header on
// mutating methods. Safe methods pass through; when no keys are configured
// everything passes through.
func WriteProtect(config AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !config.Enabled() || !isMutating(r.Method) {
				next.ServeHTTP(w, r)
				return
			}
			if !config.Valid(r.Header.Get("X-API-KEY")) {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error": "invalid or missing API key",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
