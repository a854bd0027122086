package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/auth0-gateway/userctx"
)

var testSecret = []byte("test-secret-key-that-is-long-enough")

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.Claims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func callerEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(userctx.GetCaller(r.Context())))
	})
}

func TestRequireCaller(t *testing.T) {
	valid := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
		Subject:   "agent-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, jwt.SigningMethodHS256, testSecret, jwt.RegisteredClaims{
		Subject:   "agent-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	wrongKey := signToken(t, jwt.SigningMethodHS256, []byte("another-secret-key-that-is-long-enough"), jwt.RegisteredClaims{
		Subject: "agent-7",
	})
	wrongAlg := signToken(t, jwt.SigningMethodHS512, testSecret, jwt.RegisteredClaims{
		Subject: "agent-7",
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, "agent-7"},
		{"missing header", "", http.StatusUnauthorized, "missing bearer token"},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized, "missing bearer token"},
		{"expired token", "Bearer " + expired, http.StatusUnauthorized, "invalid bearer token"},
		{"wrong key", "Bearer " + wrongKey, http.StatusUnauthorized, "invalid bearer token"},
		{"wrong algorithm", "Bearer " + wrongAlg, http.StatusUnauthorized, "invalid bearer token"},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized, "invalid bearer token"},
	}

	handler := RequireCaller(testSecret)(callerEcho())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth0-management", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
