package auth

import (
	"time"

	"go-ems/internal/authz"
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/auth")

	// Login is throttled per client IP against credential stuffing.
	group.POST("/login", middleware.RateLimitByIP(rate.Every(6*time.Second), 10), handler.Login)

	authed := group.Group("")
	authed.Use(middleware.Auth(), middleware.RateLimitByUser(middleware.PerUserRate, middleware.PerUserBurst))
	{
		authed.GET("/me", middleware.Require(authz.ProfileRead), handler.Me)
		authed.PUT("/update-profile", middleware.Require(authz.ProfileUpdate), handler.UpdateProfile)
		authed.PUT("/change-password", middleware.Require(authz.PasswordChange), handler.ChangePassword)
	}
}
