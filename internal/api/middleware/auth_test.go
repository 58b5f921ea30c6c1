package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAdminAuth(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		header string
		want   bool
	}{
		{name: "valid token", tokens: []string{"secret"}, header: "Bearer secret", want: true},
		{name: "second of several tokens", tokens: []string{"one", "two"}, header: "Bearer two", want: true},
		{name: "lowercase scheme", tokens: []string{"secret"}, header: "bearer secret", want: true},
		{name: "wrong token", tokens: []string{"secret"}, header: "Bearer nope", want: false},
		{name: "token prefix only", tokens: []string{"secret"}, header: "Bearer secre", want: false},
		{name: "missing header", tokens: []string{"secret"}, header: "", want: false},
		{name: "basic scheme", tokens: []string{"secret"}, header: "Basic secret", want: false},
		{name: "empty bearer", tokens: []string{"secret"}, header: "Bearer ", want: false},
		{name: "no tokens configured", tokens: nil, header: "Bearer secret", want: false},
		{name: "blank configured token never matches", tokens: []string{" "}, header: "Bearer  ", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			var called bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got = IsAuthenticated(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/shows", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AdminAuth(tt.tokens)(next).ServeHTTP(rec, req)

			if !called {
				t.Fatal("next handler was not called")
			}
			if got != tt.want {
				t.Errorf("IsAuthenticated() = %v, want %v", got, tt.want)
			}
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
			}
		})
	}
}

func TestIsAuthenticated_EmptyContext(t *testing.T) {
	if IsAuthenticated(context.Background()) {
		t.Error("IsAuthenticated() = true for empty context")
	}
	if !IsAuthenticated(WithAuthenticated(context.Background())) {
		t.Error("IsAuthenticated() = false after WithAuthenticated")
	}
}
