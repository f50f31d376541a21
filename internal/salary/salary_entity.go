package salary

import (
	"time"

	"github.com/google/uuid"
)

// SalaryRecord is one entry in the append-only compensation ledger. The
// employee row carries a current-salary cache updated alongside each entry.
type SalaryRecord struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_salary_records_employee"`

	Amount        float64   `gorm:"type:numeric(14,2);not null"`
	EffectiveFrom time.Time `gorm:"type:date;not null"`
	Remarks       string    `gorm:"type:text"`
	RecordedBy    *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time

	// EmployeeName is populated by joined reads only.
	EmployeeName string `gorm:"->;-:migration" json:"-"`
}

func (SalaryRecord) TableName() string { return "salary_records" }
