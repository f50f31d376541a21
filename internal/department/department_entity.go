package department

import (
	"time"

	"github.com/google/uuid"
)

type Department struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_departments_name"`
	Description string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	// TotalEmployees is populated by aggregated reads only.
	TotalEmployees int `gorm:"->;-:migration" json:"-"`
}

func (Department) TableName() string { return "departments" }
