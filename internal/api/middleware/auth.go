package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"
)

// AdminAuth marks requests carrying one of the given bearer tokens as authenticated.
// Requests without a valid token pass through unauthenticated; nothing is rejected here.
func AdminAuth(tokens []string) func(http.Handler) http.Handler {
	valid := make([][]byte, 0, len(tokens))
	for _, t := range tokens {
		if t = strings.TrimSpace(t); t != "" {
			valid = append(valid, []byte(t))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token, ok := bearerToken(r); ok && matchesAny(valid, token) {
				r = r.WithContext(WithAuthenticated(r.Context()))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// IsAuthenticated reports whether AdminAuth accepted the request's credentials.
func IsAuthenticated(ctx context.Context) bool {
	ok, _ := ctx.Value(authenticatedKey).(bool)
	return ok
}

// WithAuthenticated returns a context marked as authenticated.
func WithAuthenticated(ctx context.Context) context.Context {
	return context.WithValue(ctx, authenticatedKey, true)
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	h := r.Header.Get("Authorization")
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	return h[len(prefix):], true
}

func matchesAny(valid [][]byte, token string) bool {
	got := []byte(token)
	for _, v := range valid {
		if subtle.ConstantTimeCompare(v, got) == 1 {
			return true
		}
	}
	return false
}
