package leave

import (
	"context"
	"errors"
	"time"

	"go-ems/internal/authz"
	leaveerrors "go-ems/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

const dateLayout = "2006-01-02"

// canTransition encodes the review state machine: a request is decided
// exactly once, and decided requests are terminal.
func canTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected
}

type Service interface {
	Apply(ctx context.Context, actor authz.Actor, req ApplyLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetMyLeaves(ctx context.Context, actor authz.Actor) ([]LeaveResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, actor authz.Actor, id string, req UpdateStatusRequest) (LeaveResponse, error)
	Delete(ctx context.Context, actor authz.Actor, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Apply(ctx context.Context, actor authz.Actor, req ApplyLeaveRequest) (LeaveResponse, error) {
	if actor.EmployeeID == "" {
		return LeaveResponse{}, leaveerrors.ErrNoLinkedEmployee
	}
	employeeID, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrNoLinkedEmployee
	}

	fromDate, err := time.Parse(dateLayout, req.FromDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	toDate, err := time.Parse(dateLayout, req.ToDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	if !toDate.After(fromDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	overlap, err := s.repo.HasOverlappingPeriod(ctx, actor.EmployeeID, fromDate, toDate)
	if err != nil {
		s.logger.Error("apply leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("apply leave overlap detected",
			zap.String("employee_id", actor.EmployeeID),
			zap.String("from_date", req.FromDate),
			zap.String("to_date", req.ToDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	l := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		LeaveType:  req.LeaveType,
		FromDate:   fromDate,
		ToDate:     toDate,
		Cause:      req.Cause,
		Status:     StatusPending,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", actor.EmployeeID),
		zap.String("leave_type", req.LeaveType),
	)
	return toResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, err
	}
	return toResponses(leaves), nil
}

func (s *service) GetMyLeaves(ctx context.Context, actor authz.Actor) ([]LeaveResponse, error) {
	if actor.EmployeeID == "" {
		return nil, leaveerrors.ErrNoLinkedEmployee
	}
	leaves, err := s.repo.FindByEmployee(ctx, actor.EmployeeID)
	if err != nil {
		s.logger.Error("list own leaves failed",
			zap.String("employee_id", actor.EmployeeID), zap.Error(err))
		return nil, err
	}
	return toResponses(leaves), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}
	leaves, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list leaves by employee failed",
			zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return toResponses(leaves), nil
}

// UpdateStatus decides a pending request. Decided requests are immutable,
// so a second review attempt conflicts instead of silently rewriting history.
func (s *service) UpdateStatus(ctx context.Context, actor authz.Actor, id string, req UpdateStatusRequest) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if !canTransition(l.Status, req.Status) {
		s.logger.Warn("leave review rejected by state machine",
			zap.String("leave_id", id),
			zap.String("current_status", l.Status),
			zap.String("requested_status", req.Status),
		)
		return LeaveResponse{}, leaveerrors.ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	reviewer, err := uuid.Parse(actor.UserID)
	if err != nil {
		return LeaveResponse{}, err
	}
	l.Status = req.Status
	l.ReviewedBy = &reviewer
	l.ReviewedAt = &now

	if err := s.repo.Update(ctx, l); err != nil {
		s.logger.Error("leave review persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave reviewed",
		zap.String("leave_id", id),
		zap.String("status", req.Status),
		zap.String("reviewed_by", actor.UserID),
	)
	return toResponse(*l), nil
}

// Delete lets an employee withdraw their own pending request; admins may
// remove any request.
func (s *service) Delete(ctx context.Context, actor authz.Actor, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}

	if !actor.IsAdmin() {
		if !actor.Owns(l.EmployeeID.String()) {
			return leaveerrors.ErrNotOwner
		}
		if l.Status != StatusPending {
			return leaveerrors.ErrDeleteReviewed
		}
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete leave persist failed", zap.Error(err))
		return err
	}

	s.logger.Info("leave deleted", zap.String("leave_id", id), zap.String("by", actor.UserID))
	return nil
}
