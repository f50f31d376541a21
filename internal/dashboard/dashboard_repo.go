package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)
	TotalSalaryExpense(ctx context.Context) (float64, error)
	LeaveStatusCounts(ctx context.Context) (LeaveCounts, error)
	LeaveStatusCountsByEmployee(ctx context.Context, employeeID string) (LeaveCounts, error)
	RecentEmployees(ctx context.Context, limit int) ([]RecentEmployee, error)
	DepartmentStats(ctx context.Context) ([]DepartmentStat, error)
	MonthlyHires(ctx context.Context, since time.Time) ([]MonthlyHireBucket, error)
	Profile(ctx context.Context, employeeID string) (ProfileSummary, error)
	RecentLeaves(ctx context.Context, employeeID string, limit int) ([]RecentLeave, error)
	RecentSalaries(ctx context.Context, employeeID string, limit int) ([]RecentSalary, error)
	CurrentSalary(ctx context.Context, employeeID string) (float64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmployees(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("employees").Count(&count).Error
	return count, err
}

func (r *repository) CountDepartments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("departments").Count(&count).Error
	return count, err
}

func (r *repository) TotalSalaryExpense(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("COALESCE(SUM(salary), 0)").
		Scan(&total).Error
	return total, err
}

func (r *repository) LeaveStatusCounts(ctx context.Context) (LeaveCounts, error) {
	var counts LeaveCounts
	err := r.db.WithContext(ctx).Raw(`
SELECT
	COUNT(*) FILTER (WHERE status = 'Pending')  AS pending,
	COUNT(*) FILTER (WHERE status = 'Approved') AS approved,
	COUNT(*) FILTER (WHERE status = 'Rejected') AS rejected
FROM leave_requests
`).Scan(&counts).Error
	return counts, err
}

func (r *repository) LeaveStatusCountsByEmployee(ctx context.Context, employeeID string) (LeaveCounts, error) {
	var counts LeaveCounts
	err := r.db.WithContext(ctx).Raw(`
SELECT
	COUNT(*) FILTER (WHERE status = 'Pending')  AS pending,
	COUNT(*) FILTER (WHERE status = 'Approved') AS approved,
	COUNT(*) FILTER (WHERE status = 'Rejected') AS rejected
FROM leave_requests
WHERE employee_id = ?
`, employeeID).Scan(&counts).Error
	return counts, err
}

func (r *repository) RecentEmployees(ctx context.Context, limit int) ([]RecentEmployee, error) {
	type row struct {
		ID             string
		FullName       string
		Email          string
		DepartmentName string
		CreatedAt      time.Time
	}
	var rows []row
	err := r.db.WithContext(ctx).Raw(`
SELECT
	e.id::text AS id,
	e.full_name,
	e.email,
	COALESCE(d.name, '') AS department_name,
	e.created_at
FROM employees e
LEFT JOIN departments d ON d.id = e.department_id
ORDER BY e.created_at DESC
LIMIT ?
`, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]RecentEmployee, 0, len(rows))
	for _, r := range rows {
		out = append(out, RecentEmployee{
			ID:             r.ID,
			FullName:       r.FullName,
			Email:          r.Email,
			DepartmentName: r.DepartmentName,
			CreatedAt:      r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out, nil
}

func (r *repository) DepartmentStats(ctx context.Context) ([]DepartmentStat, error) {
	var stats []DepartmentStat
	err := r.db.WithContext(ctx).Raw(`
SELECT
	d.id::text AS department_id,
	d.name AS department_name,
	COUNT(e.id) AS employee_count,
	COALESCE(SUM(e.salary), 0) AS total_salary,
	COALESCE(AVG(e.salary), 0) AS average_salary
FROM departments d
LEFT JOIN employees e ON e.department_id = d.id
GROUP BY d.id, d.name
ORDER BY d.name ASC
`).Scan(&stats).Error
	return stats, err
}

func (r *repository) MonthlyHires(ctx context.Context, since time.Time) ([]MonthlyHireBucket, error) {
	var buckets []MonthlyHireBucket
	err := r.db.WithContext(ctx).Raw(`
SELECT
	TO_CHAR(DATE_TRUNC('month', created_at), 'YYYY-MM') AS month,
	COUNT(*) AS hires
FROM employees
WHERE created_at >= ?
GROUP BY DATE_TRUNC('month', created_at)
ORDER BY month ASC
`, since).Scan(&buckets).Error
	return buckets, err
}

func (r *repository) Profile(ctx context.Context, employeeID string) (ProfileSummary, error) {
	type row struct {
		FullName       string
		Email          string
		DepartmentName string
		CreatedAt      time.Time
	}
	var p row
	err := r.db.WithContext(ctx).Raw(`
SELECT
	e.full_name,
	e.email,
	COALESCE(d.name, '') AS department_name,
	e.created_at
FROM employees e
LEFT JOIN departments d ON d.id = e.department_id
WHERE e.id = ?
`, employeeID).Scan(&p).Error
	if err != nil {
		return ProfileSummary{}, err
	}
	return ProfileSummary{
		FullName:       p.FullName,
		Email:          p.Email,
		DepartmentName: p.DepartmentName,
		DateJoined:     p.CreatedAt.UTC().Format("2006-01-02"),
	}, nil
}

func (r *repository) RecentLeaves(ctx context.Context, employeeID string, limit int) ([]RecentLeave, error) {
	type row struct {
		ID        string
		LeaveType string
		FromDate  time.Time
		ToDate    time.Time
		Status    string
	}
	var rows []row
	err := r.db.WithContext(ctx).Raw(`
SELECT id::text AS id, leave_type, from_date, to_date, status
FROM leave_requests
WHERE employee_id = ?
ORDER BY applied_at DESC
LIMIT ?
`, employeeID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]RecentLeave, 0, len(rows))
	for _, r := range rows {
		out = append(out, RecentLeave{
			ID:        r.ID,
			LeaveType: r.LeaveType,
			FromDate:  r.FromDate.Format("2006-01-02"),
			ToDate:    r.ToDate.Format("2006-01-02"),
			Status:    r.Status,
		})
	}
	return out, nil
}

func (r *repository) RecentSalaries(ctx context.Context, employeeID string, limit int) ([]RecentSalary, error) {
	type row struct {
		Amount        float64
		EffectiveFrom time.Time
		Remarks       string
	}
	var rows []row
	err := r.db.WithContext(ctx).Raw(`
SELECT amount, effective_from, remarks
FROM salary_records
WHERE employee_id = ?
ORDER BY effective_from DESC, created_at DESC
LIMIT ?
`, employeeID, limit).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]RecentSalary, 0, len(rows))
	for _, r := range rows {
		out = append(out, RecentSalary{
			Amount:        r.Amount,
			EffectiveFrom: r.EffectiveFrom.Format("2006-01-02"),
			Remarks:       r.Remarks,
		})
	}
	return out, nil
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
