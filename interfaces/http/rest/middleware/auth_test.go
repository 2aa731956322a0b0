package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/infrastructure/config"
	"github.com/projectsdatadna/test-series-api-sub001/pkg/auth"
)

func signTestToken(t *testing.T, subject, issuer string) string {
	t.Helper()
	claims := auth.Claims{
		Email:  "user@example.com",
		Groups: []string{"instructor"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func echoUser(t *testing.T, captured **auth.UserContext) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.GetUserFromContext(r.Context())
		require.NoError(t, err)
		*captured = user
		w.WriteHeader(http.StatusOK)
	})
}

func localConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTIssuer: "lms-backend"}
}

func TestAuthenticate_Local(t *testing.T) {
	var user *auth.UserContext
	handler := Authenticate(localConfig(), zap.NewNop())(echoUser(t, &user))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	r.Header.Set("Authorization", "Bearer "+signTestToken(t, "user-1", "lms-backend"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, user)
	assert.Equal(t, "user-1", user.UserID)
	assert.Equal(t, []string{"instructor"}, user.Roles)
}

func TestAuthenticate_Local_MissingToken(t *testing.T) {
	var user *auth.UserContext
	handler := Authenticate(localConfig(), zap.NewNop())(echoUser(t, &user))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, user)
}

func TestAuthenticate_Local_ExpiredToken(t *testing.T) {
	claims := auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "lms-backend",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	var user *auth.UserContext
	handler := Authenticate(localConfig(), zap.NewNop())(echoUser(t, &user))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthenticate_Local_CookieToken(t *testing.T) {
	var user *auth.UserContext
	handler := Authenticate(localConfig(), zap.NewNop())(echoUser(t, &user))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	r.AddCookie(&http.Cookie{Name: "auth_token", Value: signTestToken(t, "user-2", "lms-backend")})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, user)
	assert.Equal(t, "user-2", user.UserID)
}

func TestAuthenticate_Gateway(t *testing.T) {
	cfg := &config.Config{IsLambda: true}
	var user *auth.UserContext
	handler := Authenticate(cfg, zap.NewNop())(echoUser(t, &user))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	r.Header.Set("X-API-Gateway-Authorized", "true")
	r.Header.Set("X-User-ID", "user-3")
	r.Header.Set("X-User-Email", "user3@example.com")
	r.Header.Set("X-User-Roles", "admin,instructor")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, user)
	assert.Equal(t, "user-3", user.UserID)
	assert.Equal(t, []string{"admin", "instructor"}, user.Roles)
}

func TestAuthenticate_Gateway_NotAuthorized(t *testing.T) {
	cfg := &config.Config{IsLambda: true}
	var user *auth.UserContext
	handler := Authenticate(cfg, zap.NewNop())(echoUser(t, &user))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	r.Header.Set("X-User-ID", "user-3")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, user)
}

func TestAuthenticate_Gateway_RolesWithSpaces(t *testing.T) {
	cfg := &config.Config{IsLambda: true}
	var user *auth.UserContext
	handler := Authenticate(cfg, zap.NewNop())(echoUser(t, &user))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	r.Header.Set("X-API-Gateway-Authorized", "true")
	r.Header.Set("X-User-ID", "user-5")
	r.Header.Set("X-User-Roles", "admin, instructor")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.NotNil(t, user)
	assert.Equal(t, []string{"admin", "instructor"}, user.Roles)
	assert.True(t, user.HasRole("instructor"))
}

func TestAuthenticate_Gateway_DefaultRole(t *testing.T) {
	cfg := &config.Config{IsLambda: true}
	var user *auth.UserContext
	handler := Authenticate(cfg, zap.NewNop())(echoUser(t, &user))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	r.Header.Set("X-API-Gateway-Authorized", "true")
	r.Header.Set("X-User-ID", "user-4")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.NotNil(t, user)
	assert.Equal(t, []string{"authenticated"}, user.Roles)
}

func TestRequireRole(t *testing.T) {
	ok := func() http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("allows matching role", func(t *testing.T) {
		handler := RequireRole("admin", "instructor")(ok())
		r := httptest.NewRequest(http.MethodPost, "/api/v1/courses", nil)
		ctx := withUser(r.Context(), &auth.UserContext{UserID: "u1", Roles: []string{"instructor"}})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects missing role", func(t *testing.T) {
		handler := RequireRole("admin")(ok())
		r := httptest.NewRequest(http.MethodPost, "/api/v1/courses", nil)
		ctx := withUser(r.Context(), &auth.UserContext{UserID: "u1", Roles: []string{"student"}})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("rejects anonymous", func(t *testing.T) {
		handler := RequireRole("admin")(ok())
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/courses", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
