package app

import (
	"go-ems/internal/auth"
	"go-ems/internal/department"
	"go-ems/internal/employee"
	"go-ems/internal/leave"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/salary"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&department.Department{},
		&employee.Employee{},
		&auth.User{},
		&leave.LeaveRequest{},
		&salary.SalaryRecord{},
		&kafka.OutboxEvent{},
	)
}
