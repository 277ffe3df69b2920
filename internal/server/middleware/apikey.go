// Package middleware provides HTTP middleware shared by the API routes.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// apiKeyKey is the context key for a caller-supplied model API key.
const apiKeyKey ContextKey = "apiKey"

// APIKeyHeader carries a caller-supplied Gemini key.
const APIKeyHeader = "X-API-Key"

// APIKey copies a caller-supplied model key from the X-API-Key header, or an
// "Authorization: Bearer <key>" header, into the request context. Requests
// without either header pass through unchanged.
func APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimSpace(r.Header.Get(APIKeyHeader))
		if key == "" {
			key = bearerToken(r.Header.Get("Authorization"))
		}
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), apiKeyKey, key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken parses "Bearer <token>" case-insensitively.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetAPIKey returns the key stored by APIKey, or "".
func GetAPIKey(r *http.Request) string {
	key, _ := r.Context().Value(apiKeyKey).(string)
	return key
}

// WithAPIKey returns ctx carrying key (for testing purposes).
func WithAPIKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, apiKeyKey, key)
}
