package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"go-ems/internal/middleware"
	"go-ems/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	assert.NoError(t, err)
	return signed
}

func authRequest(t *testing.T, authorization string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	captured := map[string]string{}
	r := gin.New()
	r.GET("/me", middleware.Auth(), func(c *gin.Context) {
		captured["user_id"] = c.GetString("user_id")
		captured["role"] = c.GetString("role")
		captured["employee_id"] = c.GetString("employee_id")
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	r.ServeHTTP(w, req)
	return w, captured
}

func TestAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New().String()
	employeeID := uuid.New().String()

	t.Run("valid token resolves identity", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id":     userID,
			"role":        "employee",
			"employee_id": employeeID,
			"exp":         time.Now().Add(time.Hour).Unix(),
		})

		w, captured := authRequest(t, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID, captured["user_id"])
		assert.Equal(t, "employee", captured["role"])
		assert.Equal(t, employeeID, captured["employee_id"])
	})

	t.Run("admin token without employee link still passes", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": userID,
			"role":    "admin",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w, captured := authRequest(t, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "", captured["employee_id"])
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		w, _ := authRequest(t, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": userID,
			"role":    "employee",
			"exp":     time.Now().Add(-time.Hour).Unix(),
		})

		w, _ := authRequest(t, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": userID,
			"role":    "employee",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("other-secret"))
		assert.NoError(t, err)

		w, _ := authRequest(t, "Bearer "+signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token missing role claim is unauthorized", func(t *testing.T) {
		token := signToken(t, jwt.MapClaims{
			"user_id": userID,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		w, _ := authRequest(t, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthEnrichesRequestLogger(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	userID := uuid.New().String()
	token := signToken(t, jwt.MapClaims{
		"user_id": userID,
		"role":    "employee",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ContextLogger(logger))
	r.GET("/me", middleware.Auth(), func(c *gin.Context) {
		contextutil.GetLogger(c.Request.Context(), nil).Info("handled")
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, userID, fields["user_id"])
	assert.NotEmpty(t, fields["request_id"])
}
