package salary

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, r *SalaryRecord) error
	FindAll(ctx context.Context) ([]SalaryRecord, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error)
	HasAny(ctx context.Context, employeeID string) (bool, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	CurrentSalary(ctx context.Context, employeeID string) (float64, error)
	UpdateEmployeeSalary(ctx context.Context, employeeID string, amount float64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, rec *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindAll(ctx context.Context) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Select("salary_records.*, employees.full_name AS employee_name").
		Joins("LEFT JOIN employees ON employees.id = salary_records.employee_id").
		Order("salary_records.created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]SalaryRecord, error) {
	var records []SalaryRecord
	err := r.db.WithContext(ctx).
		Select("salary_records.*, employees.full_name AS employee_name").
		Joins("LEFT JOIN employees ON employees.id = salary_records.employee_id").
		Where("salary_records.employee_id = ?", employeeID).
		Order("salary_records.effective_from DESC, salary_records.created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *repository) HasAny(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&SalaryRecord{}).
		Where("employee_id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CurrentSalary(ctx context.Context, employeeID string) (float64, error) {
	var salary float64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Select("salary").
		Scan(&salary).Error
	return salary, err
}

func (r *repository) UpdateEmployeeSalary(ctx context.Context, employeeID string, amount float64) error {
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Update("salary", amount).Error
}
