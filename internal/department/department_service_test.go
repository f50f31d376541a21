package department_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-ems/internal/department"
	departmenterrors "go-ems/internal/department/errors"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	createFn         func(ctx context.Context, d *department.Department) error
	findAllFn        func(ctx context.Context) ([]department.Department, error)
	findByIDFn       func(ctx context.Context, id string) (*department.Department, error)
	updateFn         func(ctx context.Context, d *department.Department) error
	deleteFn         func(ctx context.Context, id string) error
	nameTakenFn      func(ctx context.Context, name string, excludeID string) (bool, error)
	countEmployeesFn func(ctx context.Context, id string) (int64, error)
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, d)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeDepartmentRepository) NameTaken(ctx context.Context, name string, excludeID string) (bool, error) {
	if f.nameTakenFn != nil {
		return f.nameTakenFn(ctx, name, excludeID)
	}
	return false, nil
}

func (f *fakeDepartmentRepository) CountEmployees(ctx context.Context, id string) (int64, error) {
	if f.countEmployeesFn != nil {
		return f.countEmployeesFn(ctx, id)
	}
	return 0, nil
}

func TestDepartmentService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		cached := []department.DepartmentResponse{{ID: uuid.New().String(), Name: "Engineering"}}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(department.ListCacheKey).SetVal(string(payload))

		repo := &fakeDepartmentRepository{
			findAllFn: func(ctx context.Context) ([]department.Department, error) {
				t.Fatal("repository must not be called on cache hit")
				return nil, nil
			},
		}

		resp, err := department.NewService(repo, rdb).GetAll(ctx)
		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		departments := []department.Department{{
			ID:             uuid.New(),
			Name:           "Finance",
			TotalEmployees: 3,
		}}
		expected, err := json.Marshal([]department.DepartmentResponse{{
			ID:             departments[0].ID.String(),
			Name:           "Finance",
			TotalEmployees: 3,
			CreatedAt:      departments[0].CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt:      departments[0].UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		}})
		assert.NoError(t, err)

		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(department.ListCacheKey).RedisNil()
		mock.ExpectSet(department.ListCacheKey, expected, 30*time.Minute).SetVal("OK")

		repo := &fakeDepartmentRepository{
			findAllFn: func(ctx context.Context) ([]department.Department, error) {
				return departments, nil
			},
		}

		resp, err := department.NewService(repo, rdb).GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Finance", resp[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("works without redis", func(t *testing.T) {
		repo := &fakeDepartmentRepository{
			findAllFn: func(ctx context.Context) ([]department.Department, error) {
				return []department.Department{{ID: uuid.New(), Name: "Sales"}}, nil
			},
		}

		resp, err := department.NewService(repo, nil).GetAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name conflicts", func(t *testing.T) {
		repo := &fakeDepartmentRepository{
			nameTakenFn: func(ctx context.Context, name, excludeID string) (bool, error) {
				return true, nil
			},
		}

		_, err := department.NewService(repo, nil).Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
		assert.ErrorIs(t, err, departmenterrors.ErrNameTaken)
	})

	t.Run("create invalidates the list cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(department.ListCacheKey).SetVal(1)

		resp, err := department.NewService(&fakeDepartmentRepository{}, rdb).Create(ctx, department.CreateDepartmentRequest{Name: "Support"})
		assert.NoError(t, err)
		assert.Equal(t, "Support", resp.Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDepartmentService_Delete(t *testing.T) {
	ctx := context.Background()
	departmentID := uuid.New()

	existing := func() *department.Department {
		return &department.Department{ID: departmentID, Name: "Engineering"}
	}

	t.Run("blocked while employees remain, count in message", func(t *testing.T) {
		repo := &fakeDepartmentRepository{
			findByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return existing(), nil
			},
			countEmployeesFn: func(ctx context.Context, id string) (int64, error) {
				return 4, nil
			},
		}

		err := department.NewService(repo, nil).Delete(ctx, departmentID.String())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "4 employee(s)")
	})

	t.Run("empty department deletes and invalidates cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectDel(department.ListCacheKey).SetVal(1)

		deleted := false
		repo := &fakeDepartmentRepository{
			findByIDFn: func(ctx context.Context, id string) (*department.Department, error) {
				return existing(), nil
			},
			deleteFn: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}

		err := department.NewService(repo, rdb).Delete(ctx, departmentID.String())
		assert.NoError(t, err)
		assert.True(t, deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing department is not found", func(t *testing.T) {
		err := department.NewService(&fakeDepartmentRepository{}, nil).Delete(ctx, departmentID.String())
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}
