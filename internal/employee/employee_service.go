package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/events"
	"go-ems/internal/messaging/kafka"
	"go-ems/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// defaultPassword is issued when an admin creates an employee without an
// explicit password; the employee is expected to change it on first login.
const defaultPassword = "123456"

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	creds  CredentialStore
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, creds CredentialStore, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, creds: creds, outbox: outbox, logger: l}
}

// Create provisions the directory record, its login credential and the
// lifecycle event in one transaction: either all three exist or none does.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	departmentID, err := uuid.Parse(req.DepartmentID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDepartmentID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee begin tx failed", zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qcreds := s.creds.WithTx(tx)
	qoutbox := s.outbox.WithTx(tx)

	taken, err := qtx.EmailTaken(ctx, req.Email, "")
	if err != nil {
		s.logger.Error("create employee email check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !taken {
		taken, err = qcreds.EmailTaken(ctx, req.Email)
		if err != nil {
			s.logger.Error("create employee credential email check failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
	}
	if taken {
		s.logger.Warn("create employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.ErrEmailTaken
	}

	exists, err := qtx.DepartmentExists(ctx, departmentID.String())
	if err != nil {
		s.logger.Error("create employee department check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if !exists {
		return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
	}

	e := &Employee{
		ID:           uuid.New(),
		FullName:     req.FullName,
		Email:        req.Email,
		Age:          req.Age,
		Gender:       req.Gender,
		Phone:        req.Phone,
		Address:      req.Address,
		DepartmentID: departmentID,
		Salary:       req.Salary,
	}
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapDBError(err)
	}

	password := req.Password
	if password == "" {
		password = defaultPassword
	}
	if err := qcreds.Create(ctx, Credential{
		Email:      req.Email,
		Password:   password,
		Role:       "employee",
		EmployeeID: e.ID.String(),
	}); err != nil {
		s.logger.Error("create employee credential failed", zap.Error(err))
		return EmployeeResponse{}, mapDBError(err)
	}

	if err := s.enqueueCreatedEvent(ctx, qoutbox, e); err != nil {
		s.logger.Error("create employee outbox failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("employee_id", e.ID.String()),
		zap.String("department_id", departmentID.String()),
	)

	if populated, err := s.repo.FindByID(ctx, e.ID.String()); err == nil {
		return toResponse(*populated), nil
	}
	return toResponse(*e), nil
}

func (s *service) enqueueCreatedEvent(ctx context.Context, outbox kafka.OutboxRepository, e *Employee) error {
	payload, err := json.Marshal(events.EmployeeCreatedEvent{
		EventType:  events.EmployeeCreatedType,
		RequestID:  contextutil.GetRequestID(ctx),
		EmployeeID: e.ID.String(),
		Email:      e.Email,
		FullName:   e.FullName,
		Salary:     e.Salary,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "employee",
		AggregateID:   e.ID.String(),
		EventType:     events.EmployeeCreatedType,
		Topic:         events.EmployeeCreatedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, err
	}
	return toResponses(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("get employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	return toResponse(*e), nil
}

func (s *service) GetByDepartment(ctx context.Context, departmentID string) ([]EmployeeResponse, error) {
	if _, err := uuid.Parse(departmentID); err != nil {
		return nil, employeeerrors.ErrInvalidDepartmentID
	}
	exists, err := s.repo.DepartmentExists(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, employeeerrors.ErrDepartmentNotFound
	}
	employees, err := s.repo.FindByDepartment(ctx, departmentID)
	if err != nil {
		s.logger.Error("list employees by department failed",
			zap.String("department_id", departmentID), zap.Error(err))
		return nil, err
	}
	return toResponses(employees), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qcreds := s.creds.WithTx(tx)

	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	if req.Email != nil && *req.Email != e.Email {
		taken, err := qtx.EmailTaken(ctx, *req.Email, id)
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !taken {
			taken, err = qcreds.EmailTaken(ctx, *req.Email)
			if err != nil {
				return EmployeeResponse{}, err
			}
		}
		if taken {
			return EmployeeResponse{}, employeeerrors.ErrEmailTaken
		}
		e.Email = *req.Email
		if err := qcreds.UpdateEmail(ctx, id, *req.Email); err != nil {
			s.logger.Error("update employee credential sync failed", zap.Error(err))
			return EmployeeResponse{}, mapDBError(err)
		}
	}

	if req.DepartmentID != nil {
		departmentID, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidDepartmentID
		}
		exists, err := qtx.DepartmentExists(ctx, departmentID.String())
		if err != nil {
			return EmployeeResponse{}, err
		}
		if !exists {
			return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
		}
		e.DepartmentID = departmentID
	}

	if req.FullName != nil {
		e.FullName = *req.FullName
	}
	if req.Age != nil {
		e.Age = *req.Age
	}
	if req.Gender != nil {
		e.Gender = *req.Gender
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Address != nil {
		e.Address = *req.Address
	}
	if req.Salary != nil {
		e.Salary = *req.Salary
	}

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapDBError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee updated", zap.String("employee_id", id))

	if populated, err := s.repo.FindByID(ctx, id); err == nil {
		return toResponse(*populated), nil
	}
	return toResponse(*e), nil
}

// Delete removes the directory record and its credential together. Salary
// ledger entries and leave history are retained as audit records.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	qcreds := s.creds.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	if err := qcreds.DeleteByEmployee(ctx, id); err != nil {
		s.logger.Error("delete employee credential failed", zap.Error(err))
		return err
	}
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("employee deleted", zap.String("employee_id", id))
	return nil
}
