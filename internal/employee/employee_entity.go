package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     string    `gorm:"type:varchar(150);not null"`
	Email        string    `gorm:"type:varchar(150);not null;uniqueIndex:idx_employees_email"`
	Age          int       `gorm:"type:int;not null"`
	Gender       string    `gorm:"type:varchar(10);not null"`
	Phone        string    `gorm:"type:varchar(30)"`
	Address      string    `gorm:"type:text"`
	DepartmentID uuid.UUID `gorm:"type:uuid;not null;index:idx_employees_department"`

	// Salary is the current-salary cache kept in sync with the ledger on
	// every recorded revision.
	Salary float64 `gorm:"type:numeric(14,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// DepartmentName is populated by joined reads only.
	DepartmentName string `gorm:"->;-:migration" json:"-"`
}

func (Employee) TableName() string { return "employees" }
