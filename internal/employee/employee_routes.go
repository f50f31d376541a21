package employee

import (
	"go-ems/internal/authz"
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	employees.Use(middleware.Auth(), middleware.RateLimitByUser(middleware.PerUserRate, middleware.PerUserBurst))
	{
		employees.GET("", middleware.Require(authz.EmployeeList), handler.GetAll)
		employees.GET("/:id", middleware.Require(authz.EmployeeRead), handler.GetByID)
		employees.GET("/department/:departmentId", middleware.Require(authz.EmployeeListByDept), handler.GetByDepartment)
		employees.POST("", middleware.Require(authz.EmployeeCreate), handler.Create)
		employees.PUT("/:id", middleware.Require(authz.EmployeeUpdate), handler.Update)
		employees.DELETE("/:id", middleware.Require(authz.EmployeeDelete), handler.Delete)
	}
}
