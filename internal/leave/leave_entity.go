package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee"`

	LeaveType string    `gorm:"type:varchar(30);not null"`
	FromDate  time.Time `gorm:"type:date;not null"`
	ToDate    time.Time `gorm:"type:date;not null"`
	Cause     string    `gorm:"type:text;not null"`

	Status     string     `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leave_requests_status"`
	ReviewedBy *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt *time.Time

	AppliedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time

	// EmployeeName is populated by joined reads only.
	EmployeeName string `gorm:"->;-:migration" json:"-"`
}

func (LeaveRequest) TableName() string { return "leave_requests" }
