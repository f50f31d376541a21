package auth

import (
	"context"

	"gorm.io/gorm"
)

// EmployeeProfile is the joined view behind /auth/me for employee-role users.
type EmployeeProfile struct {
	FullName       string
	Age            int
	Gender         string
	Phone          string
	Address        string
	DepartmentID   string
	DepartmentName string
	Salary         float64
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, id, hashed string) error
	UpdateEmailByEmployee(ctx context.Context, employeeID, email string) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
	FindEmployeeProfile(ctx context.Context, employeeID string) (*EmployeeProfile, error)
	UpdateEmployeeProfile(ctx context.Context, employeeID string, fields map[string]any) error
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

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) EmailTaken(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) UpdatePassword(ctx context.Context, id, hashed string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Update("password", hashed).Error
}

func (r *repository) UpdateEmailByEmployee(ctx context.Context, employeeID, email string) error {
	return r.db.WithContext(ctx).
		Model(&User{}).
		Where("employee_id = ?", employeeID).
		Update("email", email).Error
}

func (r *repository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Delete(&User{}, "employee_id = ?", employeeID).Error
}

func (r *repository) FindEmployeeProfile(ctx context.Context, employeeID string) (*EmployeeProfile, error) {
	var p EmployeeProfile
	err := r.db.WithContext(ctx).Raw(`
SELECT
	e.full_name,
	e.age,
	e.gender,
	e.phone,
	e.address,
	e.department_id::text AS department_id,
	COALESCE(d.name, '') AS department_name,
	e.salary
FROM employees e
LEFT JOIN departments d ON d.id = e.department_id
WHERE e.id = ?
`, employeeID).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) UpdateEmployeeProfile(ctx context.Context, employeeID string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Updates(fields).Error
}
