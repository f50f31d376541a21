package salary

import (
	"context"
	"encoding/json"
	"time"

	"go-ems/internal/authz"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	salaryerrors "go-ems/internal/salary/errors"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Record(ctx context.Context, actor authz.Actor, req RecordSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context) ([]SalaryResponse, error)
	GetByEmployee(ctx context.Context, employeeID string) (HistoryResponse, error)
	GetMyHistory(ctx context.Context, actor authz.Actor) (HistoryResponse, error)
	SeedInitial(ctx context.Context, employeeID string, amount float64, occurredAt time.Time) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

// Record appends a ledger entry and refreshes the employee's current-salary
// cache in one transaction; the two writes land together or not at all.
func (s *service) Record(ctx context.Context, actor authz.Actor, req RecordSalaryRequest) (SalaryResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return SalaryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}

	effectiveFrom := time.Now().UTC().Truncate(24 * time.Hour)
	if req.EffectiveFrom != "" {
		effectiveFrom, err = time.Parse(dateLayout, req.EffectiveFrom)
		if err != nil {
			return SalaryResponse{}, salaryerrors.ErrInvalidEffectiveDate
		}
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("record salary begin tx failed", zap.Error(tx.Error))
		return SalaryResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qoutbox := s.outbox.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, employeeID.String())
	if err != nil {
		s.logger.Error("record salary employee check failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	if !exists {
		return SalaryResponse{}, salaryerrors.ErrEmployeeNotFound
	}

	rec := &SalaryRecord{
		ID:            uuid.New(),
		EmployeeID:    employeeID,
		Amount:        *req.Amount,
		EffectiveFrom: effectiveFrom,
		Remarks:       req.Remarks,
	}
	if reviewer, err := uuid.Parse(actor.UserID); err == nil {
		rec.RecordedBy = &reviewer
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("record salary persist failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	if err := qtx.UpdateEmployeeSalary(ctx, employeeID.String(), *req.Amount); err != nil {
		s.logger.Error("record salary cache update failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	if err := s.enqueueRecordedEvent(ctx, qoutbox, rec); err != nil {
		s.logger.Error("record salary outbox failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("record salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("salary recorded",
		zap.String("salary_id", rec.ID.String()),
		zap.String("employee_id", employeeID.String()),
		zap.Float64("amount", rec.Amount),
	)
	return toResponse(*rec), nil
}

func (s *service) enqueueRecordedEvent(ctx context.Context, outbox kafka.OutboxRepository, rec *SalaryRecord) error {
	payload, err := json.Marshal(events.SalaryRecordedEvent{
		EventType:     events.SalaryRecordedType,
		RequestID:     contextutil.GetRequestID(ctx),
		SalaryID:      rec.ID.String(),
		EmployeeID:    rec.EmployeeID.String(),
		Amount:        rec.Amount,
		EffectiveFrom: rec.EffectiveFrom,
		OccurredAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "salary",
		AggregateID:   rec.EmployeeID.String(),
		EventType:     events.SalaryRecordedType,
		Topic:         events.SalaryRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context) ([]SalaryResponse, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list salaries failed", zap.Error(err))
		return nil, err
	}
	return toResponses(records), nil
}

func (s *service) GetByEmployee(ctx context.Context, employeeID string) (HistoryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return HistoryResponse{}, salaryerrors.ErrInvalidEmployeeID
	}
	return s.buildHistory(ctx, employeeID)
}

func (s *service) GetMyHistory(ctx context.Context, actor authz.Actor) (HistoryResponse, error) {
	if actor.EmployeeID == "" {
		return HistoryResponse{}, salaryerrors.ErrNoLinkedEmployee
	}
	return s.buildHistory(ctx, actor.EmployeeID)
}

func (s *service) buildHistory(ctx context.Context, employeeID string) (HistoryResponse, error) {
	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return HistoryResponse{}, err
	}
	if !exists {
		return HistoryResponse{}, salaryerrors.ErrEmployeeNotFound
	}

	records, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("salary history lookup failed",
			zap.String("employee_id", employeeID), zap.Error(err))
		return HistoryResponse{}, err
	}
	current, err := s.repo.CurrentSalary(ctx, employeeID)
	if err != nil {
		return HistoryResponse{}, err
	}

	return HistoryResponse{CurrentSalary: current, History: toResponses(records)}, nil
}

// SeedInitial writes the opening ledger entry for a newly created employee.
// Employees that already have history, or that vanished before the event was
// consumed, are skipped.
func (s *service) SeedInitial(ctx context.Context, employeeID string, amount float64, occurredAt time.Time) error {
	id, err := uuid.Parse(employeeID)
	if err != nil {
		return salaryerrors.ErrInvalidEmployeeID
	}

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !exists {
		s.logger.Warn("seed skipped, employee no longer exists", zap.String("employee_id", employeeID))
		return nil
	}

	has, err := s.repo.HasAny(ctx, employeeID)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	rec := &SalaryRecord{
		ID:            uuid.New(),
		EmployeeID:    id,
		Amount:        amount,
		EffectiveFrom: occurredAt.UTC().Truncate(24 * time.Hour),
		Remarks:       "Initial salary",
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("seed initial salary failed", zap.Error(err))
		return err
	}

	s.logger.Info("initial salary seeded",
		zap.String("employee_id", employeeID),
		zap.Float64("amount", amount),
	)
	return nil
}
