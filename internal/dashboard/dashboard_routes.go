package dashboard

import (
	"go-ems/internal/authz"
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dash := r.Group("/dashboard")
	dash.Use(middleware.Auth(), middleware.RateLimitByUser(middleware.PerUserRate, middleware.PerUserBurst))
	{
		dash.GET("/admin", middleware.Require(authz.DashboardAdmin), handler.Admin)
		dash.GET("/employee", middleware.Require(authz.DashboardEmployee), handler.Employee)
	}
}
