package salary

import (
	"go-ems/internal/authz"
	"go-ems/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	salaries := r.Group("/salary")
	salaries.Use(middleware.Auth(), middleware.RateLimitByUser(middleware.PerUserRate, middleware.PerUserBurst))
	{
		salaries.GET("", middleware.Require(authz.SalaryListAll), handler.GetAll)
		salaries.GET("/my-salary", middleware.Require(authz.SalaryReadOwn), handler.GetMyHistory)
		salaries.GET("/employee/:employeeId", middleware.Require(authz.SalaryHistory), handler.GetByEmployee)
		salaries.POST("/:employeeId", middleware.Require(authz.SalaryRecord), handler.Record)
	}
}
