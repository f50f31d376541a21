package department

import (
	"go-ems/internal/authz"
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	departments := r.Group("/departments")
	departments.Use(middleware.Auth(), middleware.RateLimitByUser(middleware.PerUserRate, middleware.PerUserBurst))
	{
		departments.GET("", middleware.Require(authz.DepartmentRead), handler.GetAll)
		departments.GET("/:id", middleware.Require(authz.DepartmentRead), handler.GetByID)
		departments.POST("", middleware.Require(authz.DepartmentCreate), handler.Create)
		departments.PUT("/:id", middleware.Require(authz.DepartmentUpdate), handler.Update)
		departments.DELETE("/:id", middleware.Require(authz.DepartmentDelete), handler.Delete)
	}
}
