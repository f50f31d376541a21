package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimitByUser(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	newRouter := func(r rate.Limit, b int) *gin.Engine {
		router := gin.New()
		group := router.Group("")
		group.Use(middleware.Auth(), middleware.RateLimitByUser(r, b))
		group.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	bearer := func(userID string) string {
		token := signToken(t, jwt.MapClaims{
			"user_id": userID,
			"role":    "employee",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		return "Bearer " + token
	}

	send := func(router *gin.Engine, authorization string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", authorization)
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("second request over budget is throttled", func(t *testing.T) {
		router := newRouter(rate.Every(time.Hour), 1)
		auth := bearer(uuid.NewString())

		assert.Equal(t, http.StatusOK, send(router, auth))
		assert.Equal(t, http.StatusTooManyRequests, send(router, auth))
	})

	t.Run("budgets are tracked per user", func(t *testing.T) {
		router := newRouter(rate.Every(time.Hour), 1)

		assert.Equal(t, http.StatusOK, send(router, bearer(uuid.NewString())))
		assert.Equal(t, http.StatusOK, send(router, bearer(uuid.NewString())))
	})

	t.Run("unauthenticated requests pass through the limiter", func(t *testing.T) {
		router := gin.New()
		router.GET("/open",
			middleware.RateLimitByUser(rate.Every(time.Hour), 1),
			func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/login",
		middleware.RateLimitByIP(rate.Every(time.Hour), 1),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
