package app

import (
	"net/http"

	"go-ems/internal/auth"
	"go-ems/internal/dashboard"
	"go-ems/internal/department"
	"go-ems/internal/employee"
	"go-ems/internal/leave"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/middleware"
	"go-ems/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)

	// --- Services ---
	credentialStore := auth.NewCredentialStore(authRepo)
	authService := auth.NewService(authRepo)
	departmentService := department.NewService(departmentRepo, rdb)
	employeeService := employee.NewService(gormDB, employeeRepo, credentialStore, outboxRepo)
	leaveService := leave.NewService(leaveRepo)
	salaryService := salary.NewService(gormDB, salaryRepo, outboxRepo)
	dashboardService := dashboard.NewService(dashboard.NewRepository(gormDB))

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandler(leaveService)
	salaryHandler := salary.NewHandler(salaryService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler)
		salary.RegisterRoutes(api, salaryHandler)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
