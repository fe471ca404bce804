package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukydev/car-maintenance/internal/auth"
	"github.com/ukydev/car-maintenance/internal/models"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestAuth(t *testing.T) (*auth.Service, *AuthMiddleware) {
	t.Helper()
	authService, err := auth.NewService("test-secret", 0)
	require.NoError(t, err)
	return authService, NewAuthMiddleware(authService, quietLogger())
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	authService, middleware := newTestAuth(t)
	user := &models.User{ID: "user-1", Username: "testuser"}

	t.Run("valid token", func(t *testing.T) {
		token, _ := authService.GenerateToken(user)

		req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handlerCalled := false
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
			claims, ok := GetUserFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, user.Username, claims.Username)

			raw, ok := GetTokenFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, token, raw)

			id, ok := ContextIdentity{}.CurrentIdentity(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "user-1", id)
		})

		middleware.Authenticate(handler).ServeHTTP(w, req)
		assert.True(t, handlerCalled)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
		w := httptest.NewRecorder()

		middleware.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Error("handler should not be called")
		})).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "authorization header required", errorBody(t, w))
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
		req.Header.Set("Authorization", "Bearer invalid-token")
		w := httptest.NewRecorder()

		middleware.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Error("handler should not be called")
		})).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "invalid token", errorBody(t, w))
	})

	t.Run("revoked token", func(t *testing.T) {
		token, _ := authService.GenerateToken(user)
		require.NoError(t, authService.Revoke(token))

		req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		middleware.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Error("handler should not be called")
		})).ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "token revoked", errorBody(t, w))
	})

	t.Run("skip auth paths", func(t *testing.T) {
		for _, path := range []string{"/api/auth/login", "/api/auth/register", "/health", "/api/catalog", "/api/catalog/notes"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()

			handlerCalled := false
			middleware.Authenticate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				handlerCalled = true
			})).ServeHTTP(w, req)
			assert.True(t, handlerCalled, path)
			assert.Equal(t, http.StatusOK, w.Code, path)
		}
	})

	t.Run("logout and profile require auth", func(t *testing.T) {
		for _, path := range []string{"/api/auth/logout", "/api/auth/profile", "/api/catalogue"} {
			assert.False(t, shouldSkipAuth(path), path)
		}
	})
}

func TestGetUserFromContext(t *testing.T) {
	claims := &models.Claims{UserID: "user-1", Username: "testuser"}
	ctx := context.WithValue(context.Background(), UserContextKey, claims)

	got, ok := GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, claims, got)

	_, ok = GetUserFromContext(context.Background())
	assert.False(t, ok)
}

func TestContextIdentity(t *testing.T) {
	_, ok := ContextIdentity{}.CurrentIdentity(context.Background())
	assert.False(t, ok)

	_, ok = ContextIdentity{}.CurrentIdentity(WithIdentity(context.Background(), ""))
	assert.False(t, ok)

	id, ok := ContextIdentity{}.CurrentIdentity(WithIdentity(context.Background(), "u9"))
	assert.True(t, ok)
	assert.Equal(t, "u9", id)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request failed", entry["msg"])
	assert.Equal(t, "/api/stats", entry["path"])
	assert.Equal(t, float64(500), entry["status"])
}
