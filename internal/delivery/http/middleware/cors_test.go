package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		origins     []string
		method      string
		origin      string
		preflight   bool
		wantStatus  int
		wantAllowed string
	}{
		{"allowed origin", []string{"http://localhost:3000/"}, http.MethodGet, "http://localhost:3000", false, http.StatusOK, "http://localhost:3000"},
		{"disallowed origin", []string{"http://localhost:3000"}, http.MethodGet, "http://evil.test", false, http.StatusOK, ""},
		{"wildcard", []string{"*"}, http.MethodPost, "http://any.test", false, http.StatusOK, "http://any.test"},
		{"preflight allowed", []string{"http://localhost:3000"}, http.MethodOptions, "http://localhost:3000", true, http.StatusNoContent, "http://localhost:3000"},
		{"preflight disallowed", []string{"http://localhost:3000"}, http.MethodOptions, "http://evil.test", true, http.StatusNoContent, ""},
		{"no origins configured", nil, http.MethodGet, "http://localhost:3000", false, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test/activities", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
			}
			rr := httptest.NewRecorder()
			CORS(tt.origins, next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllowed, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.preflight && tt.wantAllowed != "" {
				assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
