package dashboard

import (
	"context"
	"time"

	"go-ems/internal/authz"
	salaryerrors "go-ems/internal/salary/errors"

	"go.uber.org/zap"
)

const (
	recentEmployeeLimit = 5
	recentActivityLimit = 5
	hireHistoryMonths   = 6
)

type Service interface {
	AdminDashboard(ctx context.Context) (AdminDashboardResponse, error)
	EmployeeDashboard(ctx context.Context, actor authz.Actor) (EmployeeDashboardResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) AdminDashboard(ctx context.Context) (AdminDashboardResponse, error) {
	var resp AdminDashboardResponse
	var err error

	if resp.TotalEmployees, err = s.repo.CountEmployees(ctx); err != nil {
		s.logger.Error("dashboard employee count failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}
	if resp.TotalDepartments, err = s.repo.CountDepartments(ctx); err != nil {
		s.logger.Error("dashboard department count failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}
	if resp.TotalSalaryExpense, err = s.repo.TotalSalaryExpense(ctx); err != nil {
		s.logger.Error("dashboard salary expense failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}
	if resp.LeaveCounts, err = s.repo.LeaveStatusCounts(ctx); err != nil {
		s.logger.Error("dashboard leave counts failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}
	if resp.RecentEmployees, err = s.repo.RecentEmployees(ctx, recentEmployeeLimit); err != nil {
		s.logger.Error("dashboard recent employees failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}
	if resp.DepartmentStats, err = s.repo.DepartmentStats(ctx); err != nil {
		s.logger.Error("dashboard department stats failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}

	since := time.Now().UTC().AddDate(0, -hireHistoryMonths, 0)
	if resp.MonthlyHires, err = s.repo.MonthlyHires(ctx, since); err != nil {
		s.logger.Error("dashboard monthly hires failed", zap.Error(err))
		return AdminDashboardResponse{}, err
	}

	return resp, nil
}

func (s *service) EmployeeDashboard(ctx context.Context, actor authz.Actor) (EmployeeDashboardResponse, error) {
	if actor.EmployeeID == "" {
		return EmployeeDashboardResponse{}, salaryerrors.ErrNoLinkedEmployee
	}

	var resp EmployeeDashboardResponse
	var err error

	if resp.Profile, err = s.repo.Profile(ctx, actor.EmployeeID); err != nil {
		s.logger.Error("employee dashboard profile lookup failed",
			zap.String("employee_id", actor.EmployeeID), zap.Error(err))
		return EmployeeDashboardResponse{}, err
	}
	if resp.LeaveCounts, err = s.repo.LeaveStatusCountsByEmployee(ctx, actor.EmployeeID); err != nil {
		s.logger.Error("employee dashboard leave counts failed",
			zap.String("employee_id", actor.EmployeeID), zap.Error(err))
		return EmployeeDashboardResponse{}, err
	}
	if resp.RecentLeaves, err = s.repo.RecentLeaves(ctx, actor.EmployeeID, recentActivityLimit); err != nil {
		s.logger.Error("employee dashboard recent leaves failed",
			zap.String("employee_id", actor.EmployeeID), zap.Error(err))
		return EmployeeDashboardResponse{}, err
	}
	if resp.RecentSalaries, err = s.repo.RecentSalaries(ctx, actor.EmployeeID, recentActivityLimit); err != nil {
		s.logger.Error("employee dashboard recent salaries failed",
			zap.String("employee_id", actor.EmployeeID), zap.Error(err))
		return EmployeeDashboardResponse{}, err
	}
	if resp.CurrentSalary, err = s.repo.CurrentSalary(ctx, actor.EmployeeID); err != nil {
		s.logger.Error("employee dashboard salary lookup failed",
			zap.String("employee_id", actor.EmployeeID), zap.Error(err))
		return EmployeeDashboardResponse{}, err
	}

	return resp, nil
}
