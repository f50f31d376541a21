package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a login credential. Employee-role users carry a link to their
// directory record; admin users may have none.
type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email      string     `gorm:"type:varchar(150);not null;uniqueIndex:idx_users_email"`
	Password   string     `gorm:"type:varchar(100);not null"`
	Role       string     `gorm:"type:varchar(20);not null;default:'employee'"`
	EmployeeID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_users_employee"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
