package leave

import (
	"go-ems/internal/authz"
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.Auth(), middleware.RateLimitByUser(middleware.PerUserRate, middleware.PerUserBurst))
	{
		leaves.GET("", middleware.Require(authz.LeaveListAll), handler.GetAll)
		leaves.GET("/my-leaves", middleware.Require(authz.LeaveListOwn), handler.GetMyLeaves)
		leaves.GET("/employee/:employeeId", middleware.Require(authz.LeaveListByEmployee), handler.GetByEmployee)
		leaves.POST("", middleware.Require(authz.LeaveApply), handler.Apply)
		leaves.PUT("/:id/status", middleware.Require(authz.LeaveReview), handler.UpdateStatus)
		leaves.DELETE("/:id", middleware.Require(authz.LeaveDelete), handler.Delete)
	}
}
