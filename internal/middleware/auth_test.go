package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripora/portal/backend/internal/middleware"
)

var testSecret = []byte("test-signing-key")

// protectedHandler stands in for an admin endpoint.
var protectedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAdminAuth_ValidToken_PassesThrough(t *testing.T) {
	token, err := middleware.IssueAdminToken(testSecret, "ops")
	require.NoError(t, err)

	h := middleware.NewAdminAuth(testSecret)(protectedHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/form", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_MissingToken_Returns401(t *testing.T) {
	h := middleware.NewAdminAuth(testSecret)(protectedHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/form", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization token missing")
}

func TestAdminAuth_WrongSecret_Returns401(t *testing.T) {
	token, err := middleware.IssueAdminToken([]byte("some-other-key"), "ops")
	require.NoError(t, err)

	h := middleware.NewAdminAuth(testSecret)(protectedHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/form", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_ExpiredToken_Returns401(t *testing.T) {
	claims := middleware.AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	h := middleware.NewAdminAuth(testSecret)(protectedHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/form", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_NonAdminRole_Returns403(t *testing.T) {
	claims := middleware.AdminClaims{
		Role: "viewer",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	h := middleware.NewAdminAuth(testSecret)(protectedHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/form", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "admin privileges required")
}
