package department

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	departmenterrors "go-ems/internal/department/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ListCacheKey = "departments:all"
	listCacheTTL = 30 * time.Minute
)

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	taken, err := s.repo.NameTaken(ctx, req.Name, "")
	if err != nil {
		s.logger.Error("create department name check failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	if taken {
		return DepartmentResponse{}, departmenterrors.ErrNameTaken
	}

	d := &Department{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("create department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("department created",
		zap.String("department_id", d.ID.String()),
		zap.String("name", d.Name),
	)
	return toResponse(*d), nil
}

// GetAll serves the department list from redis when possible; concurrent
// misses are collapsed to a single database read.
func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ListCacheKey).Result(); err == nil {
			var resp []DepartmentResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ListCacheKey, func() (interface{}, error) {
		departments, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, err
		}

		resp := toResponses(departments)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, ListCacheKey, jsonData, listCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return nil, err
	}

	return v.([]DepartmentResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		s.logger.Error("get department failed", zap.String("department_id", id), zap.Error(err))
		return DepartmentResponse{}, err
	}
	return toResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
		}
		return DepartmentResponse{}, err
	}

	if req.Name != nil && *req.Name != d.Name {
		taken, err := s.repo.NameTaken(ctx, *req.Name, id)
		if err != nil {
			return DepartmentResponse{}, err
		}
		if taken {
			return DepartmentResponse{}, departmenterrors.ErrNameTaken
		}
		d.Name = *req.Name
	}
	if req.Description != nil {
		d.Description = *req.Description
	}

	if err := s.repo.Update(ctx, d); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("department updated", zap.String("department_id", id))
	return toResponse(*d), nil
}

// Delete refuses to remove a department that still has employees; the error
// names the head count blocking the delete.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return departmenterrors.ErrDepartmentNotFound
		}
		return err
	}

	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		s.logger.Error("delete department employee count failed", zap.Error(err))
		return err
	}
	if count > 0 {
		s.logger.Warn("delete department blocked",
			zap.String("department_id", id),
			zap.Int64("employees", count),
		)
		return departmenterrors.ErrHasEmployees(count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete department persist failed", zap.Error(err))
		return err
	}

	s.invalidateListCache(ctx)
	s.logger.Info("department deleted", zap.String("department_id", id))
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ListCacheKey).Err(); err != nil {
		s.logger.Warn("department cache invalidation failed", zap.Error(err))
	}
}
