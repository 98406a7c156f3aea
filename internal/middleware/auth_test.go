package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/RabbiPrimon/Calorie-Counter/internal/middleware"
	"github.com/RabbiPrimon/Calorie-Counter/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (s *stubValidator) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	return s.claims, s.err
}

func setupGuardedRouter(v middleware.TokenValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(v))
	router.GET("/guarded", func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := setupGuardedRouter(&stubValidator{})

	req := httptest.NewRequest("GET", "/guarded", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	router := setupGuardedRouter(&stubValidator{})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectedToken(t *testing.T) {
	router := setupGuardedRouter(&stubValidator{err: errors.New("token revoked")})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token revoked")
}

func TestAuthMiddlewarePassesClaims(t *testing.T) {
	router := setupGuardedRouter(&stubValidator{claims: &types.TokenClaims{
		UserID:   uuid.New(),
		Username: "alice",
		Role:     "user",
	}})

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(&stubValidator{claims: &types.TokenClaims{
		UserID: uuid.New(),
		Role:   "user",
	}}))
	router.GET("/admin", middleware.RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer abc")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
